package dto

import (
	"fmt"
	"net/http"
	"time"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

// StayParams is a date range taken from the query string. Missing dates stay
// unset (zero); the engines treat an unset bound as "no constraint".
type StayParams struct {
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	ExcludeBookingID int64     `json:"exclude_booking_id"`
}

// FromRequest populates StayParams from the HTTP request.
// Example:
//
//	q := &dto.StayParams{}
//	err := q.FromRequest(req)
//
// Dates use YYYY-MM-DD. A malformed date or booking id is a bad request.
func (q *StayParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	checkIn, err := timezone.ParseDate(queryParams.Get(constant.RequestParamCheckIn))
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("%s must be a YYYY-MM-DD date", constant.RequestParamCheckIn)) //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(queryParams.Get(constant.RequestParamCheckOut))
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("%s must be a YYYY-MM-DD date", constant.RequestParamCheckOut)) //nolint:wrapcheck
	}

	q.CheckIn = checkIn
	q.CheckOut = checkOut
	q.ExcludeBookingID = 0

	if exclude := queryParams.Get(constant.RequestParamExcludeBookingID); exclude != constant.Empty {
		id, ok := shared.ParseID(exclude)
		if !ok {
			return failure.BadRequestFromString(fmt.Sprintf("%s must be a positive integer", constant.RequestParamExcludeBookingID)) //nolint:wrapcheck
		}

		q.ExcludeBookingID = id
	}

	return nil
}
