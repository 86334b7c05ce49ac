package comment

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "ticketdesk/internal/application/ticket/dto"
	ticketusecases "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/interfaces/http/handlers/testutil"
	apperrors "ticketdesk/internal/shared/errors"
)

type mockCreateCommentExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.CreateCommentCommand) (*ticketusecases.CreateCommentResult, error)
}

func (m *mockCreateCommentExecutor) Execute(ctx context.Context, cmd ticketusecases.CreateCommentCommand) (*ticketusecases.CreateCommentResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListCommentsExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketusecases.ListCommentsQuery) (*ticketusecases.ListCommentsResult, error)
}

func (m *mockListCommentsExecutor) Execute(ctx context.Context, query ticketusecases.ListCommentsQuery) (*ticketusecases.ListCommentsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

func setupRouter(h *Handler) *gin.Engine {
	r := testutil.NewTestRouter()
	comments := r.Group("/api/comments")
	{
		comments.GET("/:id", h.List)
		comments.POST("/", h.Create)
	}
	return r
}

func TestCreateComment_Success(t *testing.T) {
	createUC := &mockCreateCommentExecutor{
		ExecuteFunc: func(ctx context.Context, cmd ticketusecases.CreateCommentCommand) (*ticketusecases.CreateCommentResult, error) {
			assert.Equal(t, uint(3), cmd.TicketID)
			assert.Equal(t, uint(7), cmd.AuthorID)
			return &ticketusecases.CreateCommentResult{
				Comment: ticketdto.CommentDTO{
					ID:        11,
					Content:   cmd.Content,
					AuthorID:  cmd.AuthorID,
					CreatedAt: time.Now().UTC(),
				},
			}, nil
		},
	}
	h := NewHandler(createUC, nil)
	r := setupRouter(h)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/api/comments/", gin.H{
		"ticket_id": 3,
		"author_id": 7,
		"content":   "Looks like a cabling issue",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	body := testutil.DecodeResponse(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	cm := data["comment"].(map[string]interface{})
	assert.Equal(t, float64(11), cm["id"])
	assert.Equal(t, float64(7), cm["author_id"])
}

func TestCreateComment_MissingFields(t *testing.T) {
	h := NewHandler(&mockCreateCommentExecutor{}, nil)
	r := setupRouter(h)

	cases := []gin.H{
		{"author_id": 7, "content": "no ticket id"},
		{"ticket_id": 3, "content": "no author id"},
		{"ticket_id": 3, "author_id": 7},
	}
	for _, payload := range cases {
		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/comments/", payload, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreateComment_MissingTicket(t *testing.T) {
	createUC := &mockCreateCommentExecutor{
		ExecuteFunc: func(ctx context.Context, cmd ticketusecases.CreateCommentCommand) (*ticketusecases.CreateCommentResult, error) {
			return nil, apperrors.NewNotFoundError("Ticket or author does not exist")
		},
	}
	h := NewHandler(createUC, nil)
	r := setupRouter(h)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/api/comments/", gin.H{
		"ticket_id": 999,
		"author_id": 7,
		"content":   "Orphan comment",
	}, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComments(t *testing.T) {
	listUC := &mockListCommentsExecutor{
		ExecuteFunc: func(ctx context.Context, query ticketusecases.ListCommentsQuery) (*ticketusecases.ListCommentsResult, error) {
			assert.Equal(t, uint(3), query.TicketID)
			return &ticketusecases.ListCommentsResult{
				Comments: []ticketdto.CommentDTO{
					{ID: 1, Content: "First", AuthorID: 7, AuthorName: "Alice", CreatedAt: time.Now().UTC()},
				},
			}, nil
		},
	}
	h := NewHandler(nil, listUC)
	r := setupRouter(h)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/api/comments/3", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeResponse(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["results"])
	comments := body["comments"].([]interface{})
	require.Len(t, comments, 1)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, "Alice", first["author_name"])
}

func TestListComments_Empty(t *testing.T) {
	listUC := &mockListCommentsExecutor{
		ExecuteFunc: func(ctx context.Context, query ticketusecases.ListCommentsQuery) (*ticketusecases.ListCommentsResult, error) {
			return &ticketusecases.ListCommentsResult{Comments: []ticketdto.CommentDTO{}}, nil
		},
	}
	h := NewHandler(nil, listUC)
	r := setupRouter(h)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/api/comments/3", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeResponse(t, w)
	assert.Equal(t, float64(0), body["results"])
}

func TestListComments_InvalidID(t *testing.T) {
	h := NewHandler(nil, &mockListCommentsExecutor{})
	r := setupRouter(h)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/api/comments/abc", nil, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
