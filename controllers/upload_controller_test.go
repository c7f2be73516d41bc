package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/services"
)

// upload posts content as the multipart "file" field
func (s *ControllerSuite) upload(auth0ID, filename string, content []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Test-User", auth0ID)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ControllerSuite) TestUploadDocument() {
	w := s.upload("auth0|client", "thesis draft.docx", []byte("PK docx bytes"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var doc services.UploadedDocument
	s.decode(w, &doc)
	s.True(strings.HasPrefix(doc.FileURL, services.UserDocumentPrefix(s.client.UserID)))
	s.True(strings.HasSuffix(doc.FileURL, ".docx"))
	s.Equal("thesis draft.docx", doc.OriginalName)
	s.True(s.store.Exists(doc.FileURL))

	w = s.request(http.MethodGet, "/api/v1/uploads/url?key="+url.QueryEscape(doc.FileURL), "auth0|client", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var link struct {
		URL       string `json:"url"`
		ExpiresIn int    `json:"expiresIn"`
	}
	s.decode(w, &link)
	s.Contains(link.URL, doc.FileURL)
	s.Equal(3600, link.ExpiresIn)
}

func (s *ControllerSuite) TestUploadDocument_Rejected() {
	tests := []struct {
		name         string
		auth0ID      string
		filename     string
		content      []byte
		expectedCode string
		status       int
	}{
		{"executable", "auth0|client", "setup.exe", []byte("MZ"), "INVALID_FILE_FORMAT", http.StatusBadRequest},
		{"empty file", "auth0|client", "notes.txt", []byte{}, "EMPTY_FILE", http.StatusBadRequest},
		{"no file field", "auth0|client", "", nil, "MISSING_FILE", http.StatusBadRequest},
		{"unknown user", "auth0|nobody", "notes.txt", []byte("hi"), "USER_NOT_FOUND", http.StatusNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.upload(tt.auth0ID, tt.filename, tt.content)
			s.Equal(tt.status, w.Code, w.Body.String())
			s.Equal(tt.expectedCode, s.decode(w, nil).Error.Code)
		})
	}
	s.Empty(s.store.Objects())
}

func (s *ControllerSuite) TestDocumentURL_Missing() {
	w := s.request(http.MethodGet, "/api/v1/uploads/url", "auth0|client", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/v1/uploads/url?key=orders/documents/gone.pdf", "auth0|client", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("FILE_NOT_FOUND", s.decode(w, nil).Error.Code)
}

func (s *ControllerSuite) TestDocumentURL_OnlyForParticipants() {
	w := s.upload("auth0|client", "brief.pdf", []byte("%PDF-1.7"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var doc services.UploadedDocument
	s.decode(w, &doc)
	path := "/api/v1/uploads/url?key=" + url.QueryEscape(doc.FileURL)

	for _, auth0ID := range []string{"auth0|other", "auth0|writer"} {
		w = s.request(http.MethodGet, path, auth0ID, nil)
		s.Equal(http.StatusNotFound, w.Code, auth0ID)
		s.Equal("FILE_NOT_FOUND", s.decode(w, nil).Error.Code)
	}

	body := s.orderBody("private")
	body["files"] = []map[string]string{{"fileUrl": doc.FileURL, "originalName": doc.OriginalName}}
	w = s.request(http.MethodPost, "/api/v1/orders", "auth0|client", body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var placed services.PlaceOrderResult
	s.decode(w, &placed)
	s.Require().NoError(s.db.Create(&models.WriterOrder{OrderID: placed.OrderID, WriterID: s.writer.ID}).Error)

	w = s.request(http.MethodGet, path, "auth0|writer", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.request(http.MethodGet, path, "auth0|other", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ControllerSuite) TestPlaceOrder_ForeignDocument() {
	w := s.upload("auth0|other", "theirs.pdf", []byte("%PDF-1.7"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var doc services.UploadedDocument
	s.decode(w, &doc)

	body := s.orderBody("public")
	body["files"] = []map[string]string{{"fileUrl": doc.FileURL, "originalName": doc.OriginalName}}
	w = s.request(http.MethodPost, "/api/v1/orders", "auth0|client", body)
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	s.Equal("VALIDATION_ERROR", s.decode(w, nil).Error.Code)
}

func (s *ControllerSuite) TestDiscardDocument() {
	w := s.upload("auth0|client", "draft.pdf", []byte("%PDF-1.7"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var draft services.UploadedDocument
	s.decode(w, &draft)
	path := "/api/v1/uploads?key=" + url.QueryEscape(draft.FileURL)

	w = s.request(http.MethodDelete, path, "auth0|other", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.True(s.store.Exists(draft.FileURL))

	w = s.request(http.MethodDelete, path, "auth0|client", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.False(s.store.Exists(draft.FileURL))

	w = s.upload("auth0|client", "kept.pdf", []byte("%PDF-1.7"))
	s.Require().Equal(http.StatusCreated, w.Code)
	var kept services.UploadedDocument
	s.decode(w, &kept)
	body := s.orderBody("public")
	body["files"] = []map[string]string{{"fileUrl": kept.FileURL, "originalName": kept.OriginalName}}
	w = s.request(http.MethodPost, "/api/v1/orders", "auth0|client", body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodDelete, "/api/v1/uploads?key="+url.QueryEscape(kept.FileURL), "auth0|client", nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("FILE_ATTACHED", s.decode(w, nil).Error.Code)
	s.True(s.store.Exists(kept.FileURL))

	w = s.request(http.MethodDelete, "/api/v1/uploads", "auth0|client", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}
