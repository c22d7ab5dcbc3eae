package handler

import (
	"net/http"
)

const (
	staticPath  = "/static/*filepath"
	staticIndex = "/static/index.html"
)

// StaticFiles serve o frontend. httprouter entrega o caminho completo, então o prefixo é removido.
func StaticFiles(dir string) http.Handler {
	return http.StripPrefix("/static", http.FileServer(http.Dir(dir)))
}

func RedirectToIndex() http.Handler {
	return http.RedirectHandler(staticIndex, http.StatusTemporaryRedirect)
}
