package repository_test

import (
	"context"
	"testing"
	"time"

	apiMocks "hotel/infras/hotelapi/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_SendsNoIdentityInBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := apiMocks.NewMockClient(ctrl)
	repo := repository.New(client, mocks.NewOtel())

	booking := model.Booking{
		ID:       9,
		CheckIn:  gModel.NewDate(timezone.Date(2024, time.March, 1)),
		CheckOut: gModel.NewDate(timezone.Date(2024, time.March, 4)),
		RoomID:   2,
		GuestID:  5,
		Amount:   360000,
	}

	sent := booking
	sent.ID = 0

	gomock.InOrder(
		client.EXPECT().Create(gomock.Any(), model.ResourceName, sent).Return(nil),
		client.EXPECT().Update(gomock.Any(), model.ResourceName, int64(9), sent).Return(nil),
	)

	assert.NoError(t, repo.Insert(context.Background(), booking))
	assert.NoError(t, repo.Update(context.Background(), booking.ID, booking))
}
