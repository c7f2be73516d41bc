package controllers

import (
	"net/http"

	"github.com/kendall-kelly/essay-orders-api/models"
)

func (s *ControllerSuite) TestListReference() {
	w := s.request(http.MethodGet, "/api/v1/reference/currencies", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var currencies []models.Currency
	s.decode(w, &currencies)
	s.Len(currencies, 3)

	w = s.request(http.MethodGet, "/api/v1/reference/citation-styles", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var styles []models.CitationStyle
	s.decode(w, &styles)
	s.NotEmpty(styles)

	w = s.request(http.MethodGet, "/api/v1/reference/planets", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("UNKNOWN_REFERENCE", s.decode(w, nil).Error.Code)
}

func (s *ControllerSuite) TestGrammarQuiz() {
	w := s.request(http.MethodGet, "/api/v1/reference/grammar-quiz?limit=2", "auth0|writer", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var questions []map[string]interface{}
	s.decode(w, &questions)
	s.Len(questions, 2)
	for _, q := range questions {
		s.NotContains(q, "answer")
	}

	w = s.request(http.MethodGet, "/api/v1/reference/grammar-quiz?limit=many", "auth0|writer", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_LIMIT", s.decode(w, nil).Error.Code)
}
