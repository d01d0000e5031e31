package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// InitServer inicializa el servidor con las rutas de mux, en caso de no poder levantarlo retorna un error
//
// Parámetros:
//   - port: puerto donde se iniciará el servidor
//   - mux: rutas que atiende el servidor
//
// Ejemplo:
//
//	func main() {
//		mux := http.NewServeMux()
//		mux.HandleFunc("GET /", handlers.HandshakeHandler("Bienvenido"))
//		err := server.InitServer(8002, mux)
//		if err != nil {
//			panic(err)
//		}
//	}
func InitServer(port int, mux http.Handler) error {
	addr := ":" + strconv.Itoa(port)

	slog.Info(fmt.Sprintf("Servidor escuchando en el puerto %d", port))
	err := http.ListenAndServe(addr, mux)
	if err != nil {
		slog.Error("Error al escuchar en el puerto "+addr, "error", err)
	}
	return err
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON
//
// Parámetros:
//   - writer: el http.ResponseWriter con el que se escribe la respuesta HTTP
//   - data: cualquier estructura de datos que querés enviar al cliente, se convierte automáticamente a JSON.
func SendJsonResponse(writer http.ResponseWriter, data any) {
	SendJsonResponseWithStatus(writer, http.StatusOK, data)
}

// SendJsonResponseWithStatus es igual a SendJsonResponse pero permite elegir el código de estado.
func SendJsonResponseWithStatus(writer http.ResponseWriter, status int, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(response)
}
