package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrUnprocessable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrNonSuccessStatus, ErrBadGateway, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrNonSuccessStatus, resp.StatusCode(), body)
	}
}
