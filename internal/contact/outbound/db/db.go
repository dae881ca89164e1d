// Package db persists the contact audit trail in MongoDB. Writes are
// best-effort; callers log failures and keep the email pipeline going.
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.opentelemetry.io/otel/codes"

	"github.com/archsol/portfolio-api/internal/contact/entity"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
)

type Audit struct {
	coll *mongo.Collection
	ins  instrument.Instrumentation
}

func NewAudit(coll *mongo.Collection, ins instrument.Instrumentation) *Audit {
	return &Audit{coll: coll, ins: ins}
}

func (a *Audit) CreateRecord(ctx context.Context, rec entity.AuditRecord) error {
	ctx, span := a.ins.Tracer("contact.outbound.db").Start(ctx, "CreateRecord")
	defer span.End()

	doc := bson.M{
		"_id":          rec.ID,
		"name":         rec.Name,
		"email":        rec.Email,
		"company":      rec.Company,
		"project_type": rec.ProjectType,
		"status":       rec.Status.String(),
		"detail":       rec.Detail,
		"source_ip":    rec.SourceIP,
		"user_agent":   rec.UserAgent,
		"created_at":   rec.CreatedAt,
		"updated_at":   rec.CreatedAt,
	}

	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (a *Audit) UpdateRecordStatus(ctx context.Context, id int64, status entity.AuditStatus, detail string, at time.Time) error {
	ctx, span := a.ins.Tracer("contact.outbound.db").Start(ctx, "UpdateRecordStatus")
	defer span.End()

	update := bson.M{"$set": bson.M{
		"status":     status.String(),
		"detail":     detail,
		"updated_at": at,
	}}

	if _, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
