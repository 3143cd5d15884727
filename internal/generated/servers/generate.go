// Package servers holds the echo server interface and wire models generated
// from api/http/dispatch.yaml.
package servers

//go:generate oapi-codegen --config=cfg.yaml ../../../api/http/dispatch.yaml
