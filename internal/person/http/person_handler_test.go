package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/persons/internal/person/domain"
	"github.com/allisson/persons/internal/person/http/dto"
	"github.com/allisson/persons/internal/person/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// setupTestHandler creates a test handler with a mocked use case.
func setupTestHandler(t *testing.T) (*PersonHandler, *mocks.MockPersonUseCase) {
	t.Helper()

	mockUseCase := mocks.NewMockPersonUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPersonHandler(mockUseCase, logger), mockUseCase
}

// createTestContext builds a gin context around a raw request body.
func createTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	return response["message"]
}

func storedPerson() *domain.Person {
	return &domain.Person{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Maria",
		Nickname:  "maria",
		Birthdate: domain.NewDate(1990, time.January, 1),
		Stack:     []string{"Java", "Go"},
	}
}

func TestPersonHandler_CreateHandler(t *testing.T) {
	validBody := `{"apelido":"maria","nome":"Maria","nascimento":"1990-01-01","stack":["Java","Go"]}`

	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Person) bool {
			return p.Nickname == "maria" && p.Name == "Maria" &&
				p.Birthdate == domain.NewDate(1990, time.January, 1) &&
				assert.ObjectsAreEqual([]string{"Java", "Go"}, p.Stack)
		})).
			Return(&domain.Person{ID: id}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/pessoas", validBody)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/pessoas/"+id.String(), w.Header().Get("Location"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NicknameAlreadyExists", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.NewCreatePersonError(domain.CreatePersonNicknameAlreadyExists, errors.New("23505"))).
			Once()

		c, w := createTestContext(http.MethodPost, "/pessoas", validBody)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, domain.MessageNicknameAlreadyExists, decodeMessage(t, w))
	})

	t.Run("Error_Unknown", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.NewCreatePersonError(domain.CreatePersonUnknown, errors.New("pq: secret detail"))).
			Once()

		c, w := createTestContext(http.MethodPost, "/pessoas", validBody)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, domain.MessageUnknown, decodeMessage(t, w))
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("Error_MissingFieldMessage", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/pessoas", `{"nome":"Maria","nascimento":"1990-01-01"}`)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid input: apelido: is required.", decodeMessage(t, w))
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	rejected := []struct {
		name string
		body string
	}{
		{name: "Error_InvalidJSON", body: `invalid json`},
		{name: "Error_EmptyBody", body: ``},
		{name: "Error_MissingNickname", body: `{"nome":"Maria","nascimento":"1990-01-01"}`},
		{name: "Error_NullNickname", body: `{"apelido":null,"nome":"Maria","nascimento":"1990-01-01"}`},
		{name: "Error_NameTooLong", body: `{"apelido":"maria","nome":"` + strings.Repeat("n", 101) + `","nascimento":"1990-01-01"}`},
		{name: "Error_InvalidBirthdate", body: `{"apelido":"maria","nome":"Maria","nascimento":"1990-13-01"}`},
		{name: "Error_StackItemTooLong", body: `{"apelido":"maria","nome":"Maria","nascimento":"1990-01-01","stack":["` + strings.Repeat("s", 33) + `"]}`},
		{name: "Error_NicknameNotString", body: `{"apelido":7,"nome":"Maria","nascimento":"1990-01-01"}`},
		{name: "Error_TrailingGarbage", body: validBody + ` garbage`},
		{name: "Error_TwoDocuments", body: validBody + validBody},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUseCase := setupTestHandler(t)

			c, w := createTestContext(http.MethodPost, "/pessoas", tt.body)

			handler.CreateHandler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeMessage(t, w))
			mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPersonHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		person := storedPerson()

		mockUseCase.On("Get", mock.Anything, person.ID).Return(person, nil).Once()

		c, w := createTestContext(http.MethodGet, "/pessoas/"+person.ID.String(), "")
		c.Params = gin.Params{{Key: "id", Value: person.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PersonResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, person.ID.String(), response.ID)
		assert.Equal(t, "maria", response.Nickname)
		assert.Equal(t, "1990-01-01", response.Birthdate.String())
		assert.Equal(t, []string{"Java", "Go"}, response.Stack)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, id).
			Return(nil, domain.NewGetPersonError(domain.GetPersonNotFound, nil)).
			Once()

		c, w := createTestContext(http.MethodGet, "/pessoas/"+id.String(), "")
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.MessagePersonNotFound, decodeMessage(t, w))
	})

	t.Run("Error_MalformedID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/pessoas/not-a-uuid", "")
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.MessagePersonNotFound, decodeMessage(t, w))
		mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Error_Unknown", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, id).
			Return(nil, domain.NewGetPersonError(domain.GetPersonUnknown, errors.New("timeout"))).
			Once()

		c, w := createTestContext(http.MethodGet, "/pessoas/"+id.String(), "")
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, domain.MessageUnknown, decodeMessage(t, w))
	})
}

func TestPersonHandler_SearchHandler(t *testing.T) {
	t.Run("Success_WithResults", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		person := storedPerson()

		mockUseCase.On("Search", mock.Anything, "mar").Return([]*domain.Person{person}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/pessoas?t=mar", "")

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []dto.PersonResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, person.ID.String(), response[0].ID)
	})

	t.Run("Success_EmptyResultIsArray", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Search", mock.Anything, "zzz").Return([]*domain.Person{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/pessoas?t=zzz", "")

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Success_MissingTerm", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Search", mock.Anything, "").Return([]*domain.Person{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/pessoas", "")

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_Unknown", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Search", mock.Anything, "mar").
			Return(nil, domain.NewSearchPersonsError(errors.New("boom"))).
			Once()

		c, w := createTestContext(http.MethodGet, "/pessoas?t=mar", "")

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, domain.MessageUnknown, decodeMessage(t, w))
	})
}

func TestPersonHandler_CountHandler(t *testing.T) {
	t.Run("Success_PlainText", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Count", mock.Anything).Return(int64(3), nil).Once()

		c, w := createTestContext(http.MethodGet, "/contagem-pessoas", "")

		handler.CountHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("Error_Unknown", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Count", mock.Anything).
			Return(int64(0), domain.NewCountPersonsError(errors.New("boom"))).
			Once()

		c, w := createTestContext(http.MethodGet, "/contagem-pessoas", "")

		handler.CountHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, domain.MessageUnknown, decodeMessage(t, w))
	})
}
