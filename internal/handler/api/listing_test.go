//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rentify-api/internal/handler/api"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"
	"rentify-api/tests/common/builder"
	"rentify-api/tests/common/httptest"
	"rentify-api/tests/common/testutil"
	commandsmock "rentify-api/tests/mock/commands"
	queriesmock "rentify-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	handler      *api.ListingHandler
	userID       uuid.UUID
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.handler = api.NewListingHandler(s.mockCommands, s.mockQueries)

	// 認証ミドルウェアの代わりにコンテキストへ直接詰める
	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			handler(c)
		}
	}

	s.router.POST("/listings", authed(s.handler.CreateListing))
	s.router.GET("/listings", s.handler.ListListings)
	s.router.GET("/listings/mine", authed(s.handler.ListMyListings))
	s.router.GET("/listings/:id", s.handler.GetListing)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

func (s *ListingHandlerTestSuite) TestCreateListing() {
	url := "/listings"
	reqBody := builder.NewListingBuilder().BuildCreateDTO()
	storedBody := []byte(`{"id":"stored","title":"Mirrorless camera"}`)

	s.Run("成功時は201と保存済みボディを返す", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().CreateListing(gomock.Any(), s.userID, reqBody, key).
			Return(&commands.CreateListingResult{
				ListingID: uuid.New(),
				Code:      http.StatusCreated,
				Body:      storedBody,
			}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", idempotencyHeader(key))

		s.Equal(http.StatusCreated, rec.Code)
		s.Equal(string(storedBody), rec.Body.String())
	})

	s.Run("Idempotency-Keyヘッダがないと400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("リクエスト検証エラーは400", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "タイトル欠落", mutate: testutil.Field("title", nil)},
			{name: "タイトルが101文字", mutate: testutil.Field("title", strings.Repeat("a", 101))},
			{name: "日額が0", mutate: testutil.Field("price_per_day", 0)},
			{name: "最大日数が0", mutate: testutil.Field("max_rental_days", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "token", idempotencyHeader(uuid.New()))
				httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("ユースケースエラーをHTTPステータスへ写像する", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "ドメイン検証エラー",
				commandsError:  commands.ErrListingValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid listing data",
			},
			{
				name:           "キーのドメイン衝突",
				commandsError:  commands.ErrKeyDomainConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Idempotency key was used for a different operation",
			},
			{
				name:           "処理中のキー",
				commandsError:  commands.ErrRequestInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Request is currently being processed",
			},
			{
				name:           "失敗確定済みのキー",
				commandsError:  commands.ErrRequestFailedBefore,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "A previous request with this key failed",
			},
			{
				name:           "想定外のエラー",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateListing(gomock.Any(), s.userID, reqBody, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", idempotencyHeader(uuid.New()))
				httptest.AssertErrorContains(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ListingHandlerTestSuite) TestGetListing() {
	view := builder.NewListingBuilder().BuildReadModel()

	s.Run("成功時は出品情報を返す", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+view.ID.String(), nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Title, response["title"])
		s.Equal(view.ID.String(), response["id"])
	})

	s.Run("IDがUUIDでないと400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/not-a-uuid", nil, "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Invalid listing ID format")
	})

	s.Run("存在しない出品は404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String(), nil, "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *ListingHandlerTestSuite) TestListListings() {
	url := "/listings"

	s.Run("成功時はページと次カーソルを返す", func() {
		views := []*queries.ListingView{builder.NewListingBuilder().BuildReadModel()}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), nil, 0).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("opaque-cursor", response["next_cursor"])
	})

	s.Run("afterとlimitをそのまま引き渡す", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), &queries.Cursor{After: "abc"}, 50).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=50", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("不正なカーソルは400", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=broken", nil, "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *ListingHandlerTestSuite) TestListMyListings() {
	url := "/listings/mine"

	s.Run("自分の出品だけを返す", func() {
		views := []*queries.ListingView{builder.NewListingBuilder().WithOwnerID(s.userID).BuildReadModel()}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.userID.String(), response[0]["owner_id"])
	})
}
