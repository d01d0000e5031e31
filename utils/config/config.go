package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y retorna sus valores en la variable config. En caso de error entra en pánico.
//
// Parámetros:
//   - filePath: ubicacion donde se encuentra el archivo de configuracion
//   - config: puntero a cualquier tipo de estructura
//
// Ejemplo:
//
//	type TestConfig struct {
//		Name  string `json:"name"`
//		Value int    `json:"value"`
//	}
//	func main() {
//		var testConfig TestConfig
//		config.InitConfig("./test.json", &testConfig)
//	}
func InitConfig(filePath string, config any) {
	if err := LoadConfig(filePath, config); err != nil {
		panic(fmt.Errorf("error al configurar el archivo %s: %w", filePath, err))
	}
}

// LoadConfig es igual a InitConfig pero retorna el error en vez de entrar en pánico.
// Los campos que no aparecen en el archivo conservan el valor que ya tenía config.
func LoadConfig(filePath string, config any) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	if err := jsonParser.Decode(config); err != nil {
		return fmt.Errorf("error decodificando %s: %w", filePath, err)
	}
	return nil
}

// ApplyOverrides pisa valores de config con pares clave valor, como los que recibe el programa por línea de comandos.
// El valor se interpreta como JSON (números, booleanos) y si no lo es se toma como string.
//
// Ejemplo:
//
//	func main() {
//		var memoryConfig models.Config
//		err := config.ApplyOverrides(&memoryConfig, []string{"log_level", "DEBUG", "frame_count", "64"})
//	}
func ApplyOverrides(config any, pairs []string) error {
	if len(pairs)%2 != 0 {
		return fmt.Errorf("se esperaban pares clave valor, se recibieron %d argumentos", len(pairs))
	}
	if len(pairs) == 0 {
		return nil
	}

	updates := make(map[string]any)
	for i := 0; i < len(pairs); i += 2 {
		var parsedValue any
		if err := json.Unmarshal([]byte(pairs[i+1]), &parsedValue); err != nil {
			// No es JSON válido (ej. un string simple como un path), se usa el string directamente
			parsedValue = pairs[i+1]
		}
		updates[pairs[i]] = parsedValue
	}

	patch, err := json.Marshal(updates)
	if err != nil {
		return fmt.Errorf("error serializando los valores a actualizar: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(patch))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("error aplicando los valores %v: %w", updates, err)
	}
	return nil
}
