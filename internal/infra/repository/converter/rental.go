package converter

import (
	"rentify-api/internal/domain/rental"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/pkg/pgconv"
)

func RentalToCreateParams(r *rental.Rental) sqlc.CreateRentalParams {
	period := r.Period()
	return sqlc.CreateRentalParams{
		ID:          r.ID(),
		ListingID:   r.ListingID(),
		RequesterID: r.RequesterID(),
		StartDate:   pgconv.DateToPgtype(period.Start()),
		EndDate:     pgconv.DateToPgtype(period.End()),
		Method:      r.Method().String(),
		Status:      r.Status().String(),
		TotalPrice:  r.TotalPrice().Amount(),
	}
}
