//go:build e2e

package rental_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"rentify-api/internal/handler/dto/request"
	"rentify-api/internal/handler/dto/response"
	"rentify-api/tests/common/dbtest"
	helper "rentify-api/tests/common/httptest"
	"rentify-api/tests/e2e"
	jwtHelper "rentify-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rentalsURL  = "/api/rentals"
	borrowedURL = "/api/rentals/borrowed"
	lentURL     = "/api/rentals/lent"
)

const dateLayout = "2006-01-02"

type rentalSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(rentalSuite))
}

func (s *rentalSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

// 2日後から6日間の貸出期間
func rentalDates() (time.Time, time.Time) {
	start := time.Now().AddDate(0, 0, 2)
	end := start.AddDate(0, 0, 5)
	return start, end
}

func createRentalRequest(listingID uuid.UUID, start, end time.Time) request.CreateRentalRequest {
	return request.CreateRentalRequest{
		ListingID: listingID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Method:    "parcel",
	}
}

// 出品者と出品を用意し、出品IDを返す
func (s *rentalSuite) setupListing(t *testing.T, ownerEmail string, pricePerDay int64, maxDays int32) uuid.UUID {
	t.Helper()
	ownerID := dbtest.CreateTestUser(t, s.DB, ownerEmail, "owner")
	return dbtest.CreateTestListing(t, s.DB, ownerID, "Mirrorless camera", pricePerDay, maxDays)
}

func (s *rentalSuite) TestCreateRental() {
	s.Run("正常なレンタルリクエスト", func() {
		t := s.T()

		listingID := s.setupListing(t, "owner@example.com", 50000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "renter@example.com", "renter")

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(t, "requested", created.Status)
		require.Equal(t, int64(300000), created.TotalPrice, "料金は日数×日額で計算されること")
		require.Equal(t, start.Format(dateLayout), created.StartDate)
		require.Equal(t, end.Format(dateLayout), created.EndDate)
	})

	s.Run("自分の出品は借りられない", func() {
		t := s.T()

		token := s.jwtHelper.CreateAndLogin(t, s.Router, "selfrent@example.com", "selfrent")
		var ownerID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'selfrent@example.com'").Scan(&ownerID)
		require.NoError(t, err)
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "My own stuff", 1000, 7)

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "自分の出品へのリクエストは拒否されるべき")
	})

	s.Run("過去の開始日は拒否される", func() {
		t := s.T()

		listingID := s.setupListing(t, "past-owner@example.com", 1000, 7)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "past-renter@example.com", "past-renter")

		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 0, 3)
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "過去の開始日は拒否されるべき")
	})

	s.Run("最大貸出日数を超えるリクエストは拒否される", func() {
		t := s.T()

		listingID := s.setupListing(t, "maxdays-owner@example.com", 1000, 3)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "maxdays-renter@example.com", "maxdays-renter")

		start := time.Now().AddDate(0, 0, 2)
		end := start.AddDate(0, 0, 5)
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "最大貸出日数超過は拒否されるべき")
	})

	s.Run("期間が重複するリクエストは拒否される", func() {
		t := s.T()

		listingID := s.setupListing(t, "overlap-owner@example.com", 1000, 14)
		firstToken := s.jwtHelper.CreateAndLogin(t, s.Router, "first-renter@example.com", "first")
		secondToken := s.jwtHelper.CreateAndLogin(t, s.Router, "second-renter@example.com", "second")

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 一部でも重なれば拒否される
		overlapStart := start.AddDate(0, 0, 3)
		overlapEnd := end.AddDate(0, 0, 3)
		w = helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, overlapStart, overlapEnd), secondToken)
		require.Equal(t, http.StatusConflict, w.Code, "重複する期間のリクエストは拒否されるべき")
	})
}

func (s *rentalSuite) TestConcurrentRentalRequests() {
	s.Run("同時リクエストでも成立するのは最大一件", func() {
		t := s.T()

		listingID := s.setupListing(t, "race-owner@example.com", 1000, 14)

		const workers = 5
		tokens := make([]string, workers)
		for i := range workers {
			email := fmt.Sprintf("racer%d@example.com", i)
			tokens[i] = s.jwtHelper.CreateAndLogin(t, s.Router, email, fmt.Sprintf("racer%d", i))
		}

		start, end := rentalDates()
		reqBody := createRentalRequest(listingID, start, end)

		var wg sync.WaitGroup
		codes := make([]int, workers)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		successCount := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				successCount++
			}
		}
		require.Equal(t, 1, successCount, "同時リクエストで成立するのは一件だけのはず: %v", codes)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM rentals WHERE listing_id = $1", listingID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "データベース上もレンタルは一件だけのはず")
	})
}

func (s *rentalSuite) TestConfirmRental() {
	s.Run("リクエスターが承認すると出品が確保される", func() {
		t := s.T()

		listingID := s.setupListing(t, "confirm-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "confirm-renter@example.com", "confirm-renter")

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID+"/confirm", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)

		var listingStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM listings WHERE id = $1", listingID).Scan(&listingStatus)
		require.NoError(t, err)
		require.Equal(t, "reserved", listingStatus, "承認された出品はreservedになるべき")
	})

	s.Run("出品者は承認できない", func() {
		t := s.T()

		ownerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "noconfirm-owner@example.com", "noconfirm-owner")
		var ownerID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'noconfirm-owner@example.com'").Scan(&ownerID)
		require.NoError(t, err)
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Owner no confirm", 1000, 14)

		renterID := dbtest.CreateTestUser(t, s.DB, "noconfirm-renter@example.com", "noconfirm-renter")
		start, end := rentalDates()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, start, end, "requested", 6000)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/confirm", nil, ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code, "出品者の承認は拒否されるべき")
	})

	s.Run("承認済みのレンタルは再承認できない", func() {
		t := s.T()

		listingID := s.setupListing(t, "reconfirm-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "reconfirm-renter@example.com", "reconfirm-renter")
		var renterID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'reconfirm-renter@example.com'").Scan(&renterID)
		require.NoError(t, err)

		start, end := rentalDates()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, start, end, "confirmed", 6000)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/confirm", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, "承認済みレンタルの再承認はエラーになるべき")
	})

	s.Run("存在しないレンタルは404", func() {
		t := s.T()

		token := s.jwtHelper.CreateAndLogin(t, s.Router, "ghost-renter@example.com", "ghost-renter")
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+uuid.New().String()+"/confirm", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *rentalSuite) TestCancelRental() {
	s.Run("リクエスト中のキャンセルは出品に影響しない", func() {
		t := s.T()

		listingID := s.setupListing(t, "cancel-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "cancel-renter@example.com", "cancel-renter")

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var canceled response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &canceled))
		require.Equal(t, "canceled", canceled.Status)

		var listingStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM listings WHERE id = $1", listingID).Scan(&listingStatus)
		require.NoError(t, err)
		require.Equal(t, "available", listingStatus)
	})

	s.Run("承認済みのキャンセルは出品を解放する", func() {
		t := s.T()

		listingID := s.setupListing(t, "release-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "release-renter@example.com", "release-renter")

		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID+"/confirm", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+created.ID+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listingStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM listings WHERE id = $1", listingID).Scan(&listingStatus)
		require.NoError(t, err)
		require.Equal(t, "available", listingStatus, "キャンセルで出品は解放されるべき")
	})

	s.Run("開始日以降のキャンセルはできない", func() {
		t := s.T()

		listingID := s.setupListing(t, "late-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "late-renter@example.com", "late-renter")
		var renterID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'late-renter@example.com'").Scan(&renterID)
		require.NoError(t, err)

		// 開始日が今日のレンタルを直接用意する
		today := time.Now()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, today, today.AddDate(0, 0, 3), "confirmed", 4000)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, "開始日以降のキャンセルは拒否されるべき")

		var status string
		err = s.DB.QueryRow(t.Context(), "SELECT status FROM rentals WHERE id = $1", rentalID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "confirmed", status, "拒否されたキャンセルで状態が変わってはいけない")
	})

	s.Run("リクエスター以外はキャンセルできない", func() {
		t := s.T()

		listingID := s.setupListing(t, "stranger-owner@example.com", 1000, 14)
		renterID := dbtest.CreateTestUser(t, s.DB, "stranger-renter@example.com", "stranger-renter")
		strangerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "stranger@example.com", "stranger")

		start, end := rentalDates()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, start, end, "requested", 6000)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/cancel", nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, "リクエスター以外のキャンセルは拒否されるべき")
	})

	s.Run("キャンセル済みの再キャンセルはエラー", func() {
		t := s.T()

		listingID := s.setupListing(t, "recancel-owner@example.com", 1000, 14)
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "recancel-renter@example.com", "recancel-renter")
		var renterID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'recancel-renter@example.com'").Scan(&renterID)
		require.NoError(t, err)

		start, end := rentalDates()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, start, end, "canceled", 6000)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, "終端状態への再実行は再生ではなくエラーになるべき")
	})
}

func (s *rentalSuite) TestGetRental() {
	s.Run("当事者はレンタル詳細を閲覧できる", func() {
		t := s.T()

		ownerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "view-owner@example.com", "view-owner")
		var ownerID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'view-owner@example.com'").Scan(&ownerID)
		require.NoError(t, err)
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Viewable", 1000, 14)

		renterToken := s.jwtHelper.CreateAndLogin(t, s.Router, "view-renter@example.com", "view-renter")
		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), renterToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.RentalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		for _, token := range []string{renterToken, ownerToken} {
			w = helper.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+created.ID, nil, token)
			require.Equal(t, http.StatusOK, w.Code, "当事者は閲覧できるべき")
		}
	})

	s.Run("第三者は閲覧できない", func() {
		t := s.T()

		listingID := s.setupListing(t, "private-owner@example.com", 1000, 14)
		renterID := dbtest.CreateTestUser(t, s.DB, "private-renter@example.com", "private-renter")
		strangerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "peeker@example.com", "peeker")

		start, end := rentalDates()
		rentalID := dbtest.CreateTestRental(t, s.DB, listingID, renterID, start, end, "requested", 6000)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+rentalID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, "第三者の閲覧は拒否されるべき")
	})
}

func (s *rentalSuite) TestListRentals() {
	s.Run("借りている側と貸している側の一覧", func() {
		t := s.T()

		ownerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "ledger-owner@example.com", "ledger-owner")
		var ownerID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'ledger-owner@example.com'").Scan(&ownerID)
		require.NoError(t, err)
		listingID := dbtest.CreateTestListing(t, s.DB, ownerID, "Ledger item", 1000, 14)

		renterToken := s.jwtHelper.CreateAndLogin(t, s.Router, "ledger-renter@example.com", "ledger-renter")
		start, end := rentalDates()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, createRentalRequest(listingID, start, end), renterToken)
		require.Equal(t, http.StatusCreated, w.Code)

		// 借りている側
		w = helper.PerformRequest(t, s.Router, http.MethodGet, borrowedURL, nil, renterToken)
		require.Equal(t, http.StatusOK, w.Code)
		var borrowed response.RentalPageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &borrowed))
		require.Len(t, borrowed.Items, 1)
		require.Equal(t, "Ledger item", borrowed.Items[0].ListingTitle)

		// 貸している側
		w = helper.PerformRequest(t, s.Router, http.MethodGet, lentURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "ledger-renter", "貸し手の一覧にはリクエスターのニックネームが出るべき")

		// 無関係なユーザーの一覧は空
		bystanderToken := s.jwtHelper.CreateAndLogin(t, s.Router, "bystander@example.com", "bystander")
		w = helper.PerformRequest(t, s.Router, http.MethodGet, borrowedURL, nil, bystanderToken)
		require.Equal(t, http.StatusOK, w.Code)
		var empty response.RentalPageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
		require.Empty(t, empty.Items)
	})
}
