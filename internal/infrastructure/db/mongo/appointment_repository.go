package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

const collectionAppointments = "appointments"

// AppointmentRepository implements ports.AppointmentRepository on MongoDB.
// Conditional writes filter on {_id, status} so a concurrent transition on
// the same appointment makes the write match nothing instead of clobbering
// the newer status.
type AppointmentRepository struct {
	col     *mongo.Collection
	db      *mongo.Database
	timeout time.Duration
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{
		col:     db.Collection(collectionAppointments),
		db:      db,
		timeout: defaultTimeout,
	}
}

// Insert persists a new appointment document.
func (r *AppointmentRepository) Insert(ctx context.Context, a *domain.Appointment) error {
	if !a.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, a.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

// FindByID retrieves an appointment by id.
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var a domain.Appointment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateStatusFrom atomically flips the status from expected to next,
// applies the transition's field mutations, and appends the history entry.
// Matching nothing is reported as domain.ErrStatusConflict; the caller
// re-reads to tell a missing document from a lost race.
func (r *AppointmentRepository) UpdateStatusFrom(
	ctx context.Context,
	id string,
	expected, next domain.AppointmentStatus,
	update ports.StatusUpdate,
) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{
		"status":     string(next),
		"updated_at": time.Now().UTC(),
	}
	if update.DecidedAt != nil {
		set["decided_at"] = update.DecidedAt.UTC()
		set["decided_by"] = update.DecidedBy
		set["decision_reason"] = update.DecisionReason
		set["issued_by"] = update.IssuedBy
	}
	if update.CanceledAt != nil {
		set["canceled_at"] = update.CanceledAt.UTC()
		set["canceled_by"] = update.CanceledBy
		set["canceled_reason"] = update.CanceledReason
	}
	if update.NewAppointmentDate != nil {
		set["new_appointment_date"] = update.NewAppointmentDate.UTC()
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	ops := bson.M{
		"$set":  set,
		"$push": bson.M{"status_history": update.History},
	}
	if update.ClearDecision {
		ops["$unset"] = bson.M{
			"decided_at":      "",
			"decided_by":      "",
			"decision_reason": "",
			"issued_by":       "",
		}
	}

	filter := bson.M{"_id": id, "status": string(expected)}
	res, err := r.col.UpdateOne(ctx, filter, ops)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

// UpdateFields edits schedulable fields, conditioned on the status still
// being expected (pending). Nil fields are left untouched.
func (r *AppointmentRepository) UpdateFields(
	ctx context.Context,
	id string,
	expected domain.AppointmentStatus,
	fields ports.EditFields,
) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Purpose != nil {
		set["purpose"] = *fields.Purpose
	}
	if fields.AppointmentDate != nil {
		set["appointment_date"] = fields.AppointmentDate.UTC()
	}
	if fields.TimeSlot != nil {
		set["time_slot"] = *fields.TimeSlot
	}
	if fields.HostID != nil {
		set["host_id"] = *fields.HostID
	}

	filter := bson.M{"_id": id, "status": string(expected)}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

// detailDocument is the aggregation output shape for the detail projection.
type detailDocument struct {
	Appointment domain.Appointment `bson:",inline"`
	Host        []hostDocument     `bson:"host"`
	Citizen     []citizenDocument  `bson:"citizen"`
}

type hostDocument struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	Email    string `bson:"email"`
}

type citizenDocument struct {
	ID        string `bson:"_id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
}

// lookupStages joins host and citizen into the appointment document. The
// projection is recomputed on every read; nothing is cached or written back.
func lookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         collectionUsers,
			"localField":   "host_id",
			"foreignField": "_id",
			"as":           "host",
		}},
		{"$lookup": bson.M{
			"from":         collectionCitizens,
			"localField":   "citizen_id",
			"foreignField": "_id",
			"as":           "citizen",
		}},
	}
}

// FindDetail returns the joined detail projection for one appointment.
func (r *AppointmentRepository) FindDetail(ctx context.Context, id string) (*ports.AppointmentDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, lookupStages()...)
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrAppointmentNotFound
	}

	var doc detailDocument
	if err := cur.Decode(&doc); err != nil {
		return nil, err
	}
	return toDetail(doc), nil
}

// ListDetails returns a page of detail projections matching the filter and
// the total count.
func (r *AppointmentRepository) ListDetails(ctx context.Context, filter ports.ListAppointmentsFilter) ([]*ports.AppointmentDetail, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	match := bson.M{}
	if filter.OfficeID != "" {
		match["office_id"] = filter.OfficeID
	}
	if filter.HostID != "" {
		match["host_id"] = filter.HostID
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	dateRange := bson.M{}
	if !filter.DateFrom.IsZero() {
		dateRange["$gte"] = filter.DateFrom.UTC()
	}
	if !filter.DateTo.IsZero() {
		dateRange["$lte"] = filter.DateTo.UTC()
	}
	if len(dateRange) > 0 {
		match["appointment_date"] = dateRange
	}

	total, err := r.col.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	skip := (filter.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}

	pipeline := append([]bson.M{
		{"$match": match},
		{"$sort": bson.M{"appointment_date": 1, "_id": 1}},
		{"$skip": skip},
		{"$limit": limit},
	}, lookupStages()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*ports.AppointmentDetail
	for cur.Next(ctx) {
		var doc detailDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		items = append(items, toDetail(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func toDetail(doc detailDocument) *ports.AppointmentDetail {
	detail := &ports.AppointmentDetail{Appointment: doc.Appointment}
	if len(doc.Host) > 0 {
		detail.Host = ports.HostInfo{
			ID:       doc.Host[0].ID,
			Username: doc.Host[0].Username,
			Email:    doc.Host[0].Email,
		}
	}
	if len(doc.Citizen) > 0 {
		detail.Citizen = ports.CitizenInfo{
			ID:        doc.Citizen[0].ID,
			FirstName: doc.Citizen[0].FirstName,
			LastName:  doc.Citizen[0].LastName,
			Email:     doc.Citizen[0].Email,
			Phone:     doc.Citizen[0].Phone,
		}
	}
	return detail
}

// EnsureIndexes creates the indexes the query paths rely on.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "office_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
		{Keys: bson.D{{Key: "citizen_id", Value: 1}}},
		{Keys: bson.D{{Key: "appointment_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
