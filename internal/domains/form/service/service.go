package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/availability"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/form/model"
	guestModel "hotel/internal/domains/guest/model"
	guestRepository "hotel/internal/domains/guest/repository"
	"hotel/internal/domains/pricing"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrReload marks a mutation the remote service accepted but whose follow-up
// reload failed; the cached records are stale until the next reload.
var ErrReload = errors.New("records changed but could not be reloaded")

// Form owns one draft per record kind and the last loaded records, and turns
// drafts into remote mutations.
type Form interface {
	Load(ctx context.Context) error
	Snapshot() model.Snapshot

	Active() model.Kind
	Switch(kind model.Kind) error

	GuestDraft() model.GuestDraft
	RoomDraft() model.RoomDraft
	BookingDraft() model.BookingDraft
	SetGuestDraft(draft model.GuestDraft)
	SetRoomDraft(draft model.RoomDraft)
	SetBookingDraft(draft model.BookingDraft) model.BookingDraft
	Reset(kind model.Kind) error

	ValidationError(kind model.Kind) error
	Valid(kind model.Kind) bool

	BeginEdit(kind model.Kind, id int64) error
	Submit(ctx context.Context, kind model.Kind) error
	Remove(ctx context.Context, kind model.Kind, id int64) error

	AvailableRooms(checkIn, checkOut time.Time, excludeBookingID int64) []roomModel.Room
	Quote(checkIn, checkOut time.Time) pricing.Quote
	BookingRows() []bookingDto.BookingRow
}

type serviceImpl struct {
	guests   guestRepository.Guest
	rooms    roomRepository.Room
	bookings bookingRepository.Booking
	pricing  pricing.Rule
	otel     otel.Otel

	// inflight serializes remote mutations and reloads.
	inflight sync.Mutex

	mu       sync.RWMutex
	snapshot model.Snapshot
	active   model.Kind
	guest    model.GuestDraft
	room     model.RoomDraft
	booking  model.BookingDraft
}

func New(
	guests guestRepository.Guest,
	rooms roomRepository.Room,
	bookings bookingRepository.Booking,
	pricing pricing.Rule,
	otel otel.Otel,
) Form {
	return &serviceImpl{
		guests:   guests,
		rooms:    rooms,
		bookings: bookings,
		pricing:  pricing,
		otel:     otel,
		active:   model.KindGuest,
		snapshot: model.Snapshot{
			Guests:   []guestModel.Guest{},
			Rooms:    []roomModel.Room{},
			Bookings: []bookingModel.Booking{},
		},
	}
}

func unknownKind(kind model.Kind) error {
	return failure.BadRequestFromString(fmt.Sprintf("unknown record kind %q", kind)) //nolint:wrapcheck
}

func (s *serviceImpl) Load(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.inflight.TryLock() {
		return failure.ErrOperationInProgress
	}
	defer s.inflight.Unlock()

	return s.load(ctx)
}

// load fetches the three collections concurrently. The snapshot is replaced
// only when all of them arrive.
func (s *serviceImpl) load(ctx context.Context) error {
	var (
		guests   []guestModel.Guest
		rooms    []roomModel.Room
		bookings []bookingModel.Booking
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		guests, err = s.guests.GetAll(groupCtx)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		rooms, err = s.rooms.GetAll(groupCtx)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		bookings, err = s.bookings.GetAll(groupCtx)

		return err //nolint:wrapcheck
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load records")

		return fmt.Errorf("failed to load records: %w", err)
	}

	s.mu.Lock()
	s.snapshot = model.Snapshot{
		Guests:   guests,
		Rooms:    rooms,
		Bookings: bookings,
		LoadedAt: timezone.Now(),
	}
	s.mu.Unlock()

	log.Info().
		Int("guests", len(guests)).
		Int("rooms", len(rooms)).
		Int("bookings", len(bookings)).
		Msg("records loaded")

	return nil
}

func (s *serviceImpl) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

func (s *serviceImpl) Active() model.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active
}

// Switch makes kind the edited one. The draft of the kind being left is
// discarded.
func (s *serviceImpl) Switch(kind model.Kind) error {
	if !kind.Valid() {
		return unknownKind(kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if kind == s.active {
		return nil
	}

	s.resetLocked(s.active)
	s.active = kind

	return nil
}

func (s *serviceImpl) GuestDraft() model.GuestDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.guest
}

func (s *serviceImpl) RoomDraft() model.RoomDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.room
}

func (s *serviceImpl) BookingDraft() model.BookingDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.booking
}

func (s *serviceImpl) SetGuestDraft(draft model.GuestDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guest = draft
}

func (s *serviceImpl) SetRoomDraft(draft model.RoomDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.room = draft
}

// SetBookingDraft stores the draft with its amount recomputed from the dates.
func (s *serviceImpl) SetBookingDraft(draft model.BookingDraft) model.BookingDraft {
	draft.CheckIn = gModel.NewDate(draft.CheckIn.Time)
	draft.CheckOut = gModel.NewDate(draft.CheckOut.Time)
	draft.Amount = s.pricing.PriceFor(draft.CheckIn.Time, draft.CheckOut.Time)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.booking = draft

	return draft
}

func (s *serviceImpl) Reset(kind model.Kind) error {
	if !kind.Valid() {
		return unknownKind(kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked(kind)

	return nil
}

func (s *serviceImpl) resetLocked(kind model.Kind) {
	switch kind {
	case model.KindGuest:
		s.guest = model.GuestDraft{}
	case model.KindRoom:
		s.room = model.RoomDraft{}
	case model.KindBooking:
		s.booking = model.BookingDraft{}
	}
}

// ValidationError returns why the draft of kind cannot be submitted, or nil.
// A booking must also reference a loaded room and guest, and the room must be
// free for its dates.
func (s *serviceImpl) ValidationError(kind model.Kind) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.validateLocked(kind)
}

func (s *serviceImpl) validateLocked(kind model.Kind) error {
	switch kind {
	case model.KindGuest:
		return s.guest.Validate() //nolint:wrapcheck
	case model.KindRoom:
		return s.room.Validate() //nolint:wrapcheck
	case model.KindBooking:
		return s.validateBookingLocked(s.booking)
	default:
		return unknownKind(kind)
	}
}

func (s *serviceImpl) validateBookingLocked(draft model.BookingDraft) error {
	if err := draft.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	if _, ok := s.snapshot.Room(draft.RoomID); !ok {
		return failure.BadRequestFromString(fmt.Sprintf("%s %d does not match any room", bookingModel.FieldRoomID, draft.RoomID)) //nolint:wrapcheck
	}

	if _, ok := s.snapshot.Guest(draft.GuestID); !ok {
		return failure.BadRequestFromString(fmt.Sprintf("%s %d does not match any guest", bookingModel.FieldGuestID, draft.GuestID)) //nolint:wrapcheck
	}

	if !availability.IsAvailable(draft.RoomID, s.snapshot.Bookings, draft.CheckIn.Time, draft.CheckOut.Time, draft.ID) {
		return failure.Conflict("the room is already booked for the selected dates") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Valid(kind model.Kind) bool {
	return s.ValidationError(kind) == nil
}

// BeginEdit copies a loaded record into the draft of its kind.
func (s *serviceImpl) BeginEdit(kind model.Kind, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case model.KindGuest:
		guest, ok := s.snapshot.Guest(id)
		if !ok {
			return failure.NotFound(fmt.Sprintf("%s %d not found", guestModel.EntityName, id)) //nolint:wrapcheck
		}

		s.guest = model.GuestDraftFrom(guest)
	case model.KindRoom:
		room, ok := s.snapshot.Room(id)
		if !ok {
			return failure.NotFound(fmt.Sprintf("%s %d not found", roomModel.EntityName, id)) //nolint:wrapcheck
		}

		s.room = model.RoomDraftFrom(room)
	case model.KindBooking:
		booking, ok := s.snapshot.Booking(id)
		if !ok {
			return failure.NotFound(fmt.Sprintf("%s %d not found", bookingModel.EntityName, id)) //nolint:wrapcheck
		}

		draft := model.BookingDraftFrom(booking)
		draft.Amount = s.pricing.PriceFor(draft.CheckIn.Time, draft.CheckOut.Time)
		s.booking = draft
	default:
		return unknownKind(kind)
	}

	return nil
}

// Submit sends the draft of kind: an update when it carries an identity, a
// create otherwise. An invalid draft sends nothing. On success the draft is
// reset and every collection reloaded; on failure the draft is kept.
func (s *serviceImpl) Submit(ctx context.Context, kind model.Kind) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("form.kind", kind.String())

	if !s.inflight.TryLock() {
		return failure.ErrOperationInProgress
	}
	defer s.inflight.Unlock()

	s.mu.RLock()
	guest, room, booking := s.guest, s.room, s.booking
	err = s.validateLocked(kind)
	s.mu.RUnlock()

	if err != nil {
		return err
	}

	var id int64

	switch kind {
	case model.KindGuest:
		id = guest.ID
		err = s.submitGuest(ctx, guest)
	case model.KindRoom:
		id = room.ID
		err = s.submitRoom(ctx, room)
	case model.KindBooking:
		id = booking.ID
		err = s.submitBooking(ctx, booking)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind.String()).Int64("id", id).Msg("failed to submit draft")

		return fmt.Errorf("failed to submit %s: %w", kind, err)
	}

	scope.AddEvent("draft submitted")

	if err = s.Reset(kind); err != nil {
		return err
	}

	if err = s.load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReload, err)
	}

	return nil
}

func (s *serviceImpl) submitGuest(ctx context.Context, draft model.GuestDraft) error {
	if draft.ID != 0 {
		return s.guests.Update(ctx, draft.ID, draft.ToModel()) //nolint:wrapcheck
	}

	return s.guests.Insert(ctx, draft.ToModel()) //nolint:wrapcheck
}

func (s *serviceImpl) submitRoom(ctx context.Context, draft model.RoomDraft) error {
	if draft.ID != 0 {
		return s.rooms.Update(ctx, draft.ID, draft.ToModel()) //nolint:wrapcheck
	}

	return s.rooms.Insert(ctx, draft.ToModel()) //nolint:wrapcheck
}

// submitBooking stamps the booking and sends the amount computed from its dates.
func (s *serviceImpl) submitBooking(ctx context.Context, draft model.BookingDraft) error {
	booking := draft.ToModel()
	booking.Amount = s.pricing.PriceFor(draft.CheckIn.Time, draft.CheckOut.Time)
	booking.BookedAt = gModel.NewTimestamp(timezone.Now())

	if draft.ID != 0 {
		return s.bookings.Update(ctx, draft.ID, booking) //nolint:wrapcheck
	}

	return s.bookings.Insert(ctx, booking) //nolint:wrapcheck
}

// Remove deletes a record and reloads every collection. A draft editing the
// removed record is discarded.
func (s *serviceImpl) Remove(ctx context.Context, kind model.Kind, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"form.kind": kind.String(),
		"record.id": id,
	})

	if id <= 0 {
		return failure.BadRequestFromString(fmt.Sprintf("invalid %s id %d", kind, id)) //nolint:wrapcheck
	}

	if !s.inflight.TryLock() {
		return failure.ErrOperationInProgress
	}
	defer s.inflight.Unlock()

	switch kind {
	case model.KindGuest:
		err = s.guests.Delete(ctx, id)
	case model.KindRoom:
		err = s.rooms.Delete(ctx, id)
	case model.KindBooking:
		err = s.bookings.Delete(ctx, id)
	default:
		return unknownKind(kind)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind.String()).Int64("id", id).Msg("failed to remove record")

		return fmt.Errorf("failed to remove %s %d: %w", kind, id, err)
	}

	s.discardEditOf(kind, id)

	if err = s.load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReload, err)
	}

	return nil
}

func (s *serviceImpl) discardEditOf(kind model.Kind, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var editing int64

	switch kind {
	case model.KindGuest:
		editing = s.guest.ID
	case model.KindRoom:
		editing = s.room.ID
	case model.KindBooking:
		editing = s.booking.ID
	}

	if editing == id {
		s.resetLocked(kind)
	}
}

func (s *serviceImpl) AvailableRooms(checkIn, checkOut time.Time, excludeBookingID int64) []roomModel.Room {
	snapshot := s.Snapshot()

	return availability.AvailableRooms(snapshot.Rooms, snapshot.Bookings, checkIn, checkOut, excludeBookingID)
}

func (s *serviceImpl) Quote(checkIn, checkOut time.Time) pricing.Quote {
	return s.pricing.Quote(timezone.DateOf(checkIn), timezone.DateOf(checkOut))
}

// BookingRows lists the loaded bookings with room number and guest name resolved.
func (s *serviceImpl) BookingRows() []bookingDto.BookingRow {
	snapshot := s.Snapshot()

	rows := make([]bookingDto.BookingRow, len(snapshot.Bookings))
	for i, booking := range snapshot.Bookings {
		rows[i].FromModel(
			booking,
			snapshot.RoomNumber(booking.RoomID),
			snapshot.GuestName(booking.GuestID),
			s.pricing.Display(booking.Amount),
		)
	}

	return rows
}
