package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

func writeJson(w http.ResponseWriter, statusCode int, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithMessage(err, "marshal response")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return errors.WithMessage(err, "write response")
}
