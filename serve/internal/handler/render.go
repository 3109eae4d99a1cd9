package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const jsonContentType = "application/json; charset=utf-8"

var errEmptyBody = errors.New("empty request body")

// sonicJSON renders a response body with sonic.
type sonicJSON struct {
	Data any
}

func (r sonicJSON) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)

	body, err := sonic.Marshal(r.Data)
	if err != nil {
		return err
	}

	_, err = w.Write(body)
	return err
}

func (r sonicJSON) WriteContentType(w http.ResponseWriter) {
	if header := w.Header(); len(header["Content-Type"]) == 0 {
		header["Content-Type"] = []string{jsonContentType}
	}
}

// sonicBinding decodes a request body with sonic, then runs the binding tags.
type sonicBinding struct{}

func (sonicBinding) Name() string {
	return "json"
}

func (b sonicBinding) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errEmptyBody
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return b.BindBody(body, obj)
}

func (sonicBinding) BindBody(body []byte, obj any) error {
	if len(body) == 0 {
		return errEmptyBody
	}

	if err := sonic.Unmarshal(body, obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

func writeJSON(c *gin.Context, status int, v any) {
	c.Render(status, sonicJSON{Data: v})
}

func bindJSON(c *gin.Context, obj any) error {
	return c.ShouldBindWith(obj, sonicBinding{})
}
