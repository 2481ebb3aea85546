package handler

import (
	"context"
	"github.com/stretchr/testify/mock"
	"io"
	"net/http"
	"net/http/httptest"
	"shipdesk/internal/entity"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) Var(_ context.Context, field any, tag string) error {
	args := m.Called(field, tag)

	return args.Error(0)
}

type ReportProviderMock struct {
	mock.Mock
}

func (m *ReportProviderMock) Get(_ context.Context) (entity.Report, error) {
	args := m.Called()

	return args.Get(0).(entity.Report), args.Error(1)
}

func (m *ReportProviderMock) FindByStatus(_ context.Context, status entity.Status) ([]entity.Order, error) {
	args := m.Called(status)

	return args.Get(0).([]entity.Order), args.Error(1)
}

func sendTestRequest(method, target string, body io.Reader, handler http.HandlerFunc) *http.Response {
	request := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	handler(w, request)

	return w.Result()
}
