package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uddipan77/portfolio-tui/internal/contact"
)

func TestSendAccepted(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		gotReq = req
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := contact.NewSender(server.Client(), server.URL, "Portfolio contact")
	err := sender.Send(context.Background(), contact.Message{
		Name:  "Ada",
		Email: "ada@example.com",
		Body:  "Hello there",
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, gotReq.Method)
	require.Equal(t, "application/x-www-form-urlencoded", gotReq.Header.Get("Content-Type"))
	require.Equal(t, "application/json", gotReq.Header.Get("Accept"))
	require.Equal(t, "Ada", gotReq.PostForm.Get("name"))
	require.Equal(t, "ada@example.com", gotReq.PostForm.Get("email"))
	require.Equal(t, "Hello there", gotReq.PostForm.Get("message"))
	require.Equal(t, "Portfolio contact", gotReq.PostForm.Get("_subject"))
	// The honeypot must be present and empty.
	require.Contains(t, gotReq.PostForm, "_honey")
	require.Equal(t, "", gotReq.PostForm.Get("_honey"))
}

func TestSendRejectedWithFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = writer.Write([]byte(`{"errors":[{"message":"Invalid email","field":"email","code":"INVALID_EMAIL"}]}`))
	}))
	defer server.Close()

	sender := contact.NewSender(server.Client(), server.URL, "")
	err := sender.Send(context.Background(), contact.Message{Name: "Ada", Email: "nope", Body: "hi"})
	require.Error(t, err)

	var valErr *contact.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "Invalid email", valErr.Error())
	require.Len(t, valErr.Errors, 1)
	require.Equal(t, "email", valErr.Errors[0].Field)
}

func TestSendFailureWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := contact.NewSender(server.Client(), server.URL, "")
	err := sender.Send(context.Background(), contact.Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.ErrorIs(t, err, contact.ErrSend)

	var valErr *contact.ValidationError
	require.False(t, errors.As(err, &valErr))
}

func TestSendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	sender := contact.NewSender(http.DefaultClient, endpoint, "")
	err := sender.Send(context.Background(), contact.Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.ErrorIs(t, err, contact.ErrSend)
}
