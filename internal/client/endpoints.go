package client

import (
	"fmt"
	"net/http"
)

// DefaultBaseURL is the public parking API used when no base_url is configured.
const DefaultBaseURL = "http://cnms-parking-api.net.uztec.com.br/api/v1"

// Operation names one capability of the parking API.
type Operation string

const (
	OpCreate   Operation = "create"
	OpStayTime Operation = "stayTime"
	OpExit     Operation = "exit"
	OpVerify   Operation = "verify"
	OpUpdate   Operation = "update"
	OpCancel   Operation = "cancel"
)

// Endpoint describes how one operation is sent over the wire.
type Endpoint struct {
	Path        string // relative to the base URL
	PlateSuffix bool   // plate is appended to Path
	Method      string
	HasBody     bool
}

var endpoints = map[Operation]Endpoint{
	OpCreate:   {Path: "/entry", Method: http.MethodPost, HasBody: true},
	OpStayTime: {Path: "/time/", PlateSuffix: true, Method: http.MethodGet},
	OpExit:     {Path: "/exit/", PlateSuffix: true, Method: http.MethodPatch},
	OpVerify:   {Path: "/check/", PlateSuffix: true, Method: http.MethodGet},
	OpUpdate:   {Path: "/update/", PlateSuffix: true, Method: http.MethodPut, HasBody: true},
	OpCancel:   {Path: "/cancel/", PlateSuffix: true, Method: http.MethodDelete},
}

// Operations lists every operation in the table in a stable order.
func Operations() []Operation {
	return []Operation{OpCreate, OpStayTime, OpExit, OpVerify, OpUpdate, OpCancel}
}

// Lookup returns the endpoint registered for op.
func Lookup(op Operation) (Endpoint, error) {
	ep, ok := endpoints[op]
	if !ok {
		return Endpoint{}, fmt.Errorf("unknown operation %q", op)
	}
	return ep, nil
}

// Target returns the request path for the given plate.
// The plate is concatenated as-is, blank values included.
func (e Endpoint) Target(plate string) string {
	if e.PlateSuffix {
		return e.Path + plate
	}
	return e.Path
}

// URL joins baseURL and the request path.
func (e Endpoint) URL(baseURL, plate string) string {
	return baseURL + e.Target(plate)
}
