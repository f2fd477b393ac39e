// Package web
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// HTTP front end for the quadratic solver. Serves the input form, a
// strict GET /solve API returning roots as JSON, and a POST /solve API
// returning roots together with plot data (title, vertex, sample points)
// for client-side rendering.
package web
