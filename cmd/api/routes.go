package main

import (
	"net/http"

	"catalogapi/internal/author"
	"catalogapi/internal/book"
)

const apiPrefix = "/api/v1"

func newRouter(authorHandler *author.HTTPHandler, bookHandler *book.HTTPHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+apiPrefix+"/authors", authorHandler.List)
	mux.HandleFunc("POST "+apiPrefix+"/authors", authorHandler.Create)
	mux.HandleFunc("GET "+apiPrefix+"/authors/{id}", authorHandler.Get)
	mux.HandleFunc("PUT "+apiPrefix+"/authors/{id}", authorHandler.Update)
	mux.HandleFunc("DELETE "+apiPrefix+"/authors/{id}", authorHandler.Delete)
	mux.HandleFunc("GET "+apiPrefix+"/authors/{id}/books", bookHandler.ListByAuthor)
	mux.HandleFunc("POST "+apiPrefix+"/authors/{id}/books", bookHandler.Create)

	mux.HandleFunc("GET "+apiPrefix+"/books", bookHandler.List)
	mux.HandleFunc("GET "+apiPrefix+"/books/{id}", bookHandler.Get)
	mux.HandleFunc("PUT "+apiPrefix+"/books/{id}", bookHandler.Update)
	mux.HandleFunc("DELETE "+apiPrefix+"/books/{id}", bookHandler.Delete)
	mux.HandleFunc("PUT "+apiPrefix+"/books/{id}/authors", bookHandler.AddAuthor)

	return mux
}
