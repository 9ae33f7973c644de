package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAuthorUsecase struct {
	createResp *dto.AuthorResponse
	createErr  error
	getResp    *dto.AuthorResponse
	getErr     error
	updateResp *dto.AuthorResponse
	updateErr  error
	deleteErr  error
}

func (f *fakeAuthorUsecase) Create(ctx context.Context, req *dto.AuthorCreateRequest) (*dto.AuthorResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeAuthorUsecase) List(ctx context.Context) ([]dto.AuthorResponse, error) {
	return []dto.AuthorResponse{}, nil
}

func (f *fakeAuthorUsecase) GetByID(ctx context.Context, id uint) (*dto.AuthorResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeAuthorUsecase) Update(ctx context.Context, id uint, req *dto.AuthorUpdateRequest) (*dto.AuthorResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeAuthorUsecase) Delete(ctx context.Context, id uint) error {
	return f.deleteErr
}

func TestGetAuthor_UnknownIDIsNullPayload(t *testing.T) {
	h := NewAuthorHandler(&fakeAuthorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest("GET", "/authors/999", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "999"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200 for unknown author, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if author, ok := body["author"]; !ok || author != nil {
		t.Errorf("expected null author payload, got %v", body["author"])
	}
}

func TestCreateAuthor_Validation(t *testing.T) {
	h := NewAuthorHandler(&fakeAuthorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest("POST", "/authors", strings.NewReader(`{"name":"A"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreateAuthor_Success(t *testing.T) {
	h := NewAuthorHandler(&fakeAuthorUsecase{
		createResp: &dto.AuthorResponse{ID: 1, Name: "A", Specialisation: "cardiology"},
	}, validator.NewValidator())

	req := httptest.NewRequest("POST", "/authors", strings.NewReader(`{"name":"A","specialisation":"cardiology"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if _, ok := body["author"]; !ok {
		t.Error("expected author payload")
	}
}

func TestDeleteAuthor_Success(t *testing.T) {
	h := NewAuthorHandler(&fakeAuthorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest("DELETE", "/authors/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != 204 {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
