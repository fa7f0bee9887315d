package handler

import "net/http"

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Product Catalog Administration</title></head>
<body>
<h1>Product Catalog Administration</h1>
<p>REST API for managing the product catalogue. See /products.</p>
</body>
</html>
`

// Index handles GET / requests with a static descriptive page.
func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexPage))
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
}
