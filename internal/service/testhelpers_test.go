// FILE: internal/service/testhelpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database and migrates the full schema.
// cache=shared with a unique name keeps all pooled connections on the same
// database for the lifetime of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Service{},
		&model.Customer{},
		&model.Professional{},
		&model.ServiceRequest{},
		&model.RejectedServiceRequest{},
		&model.Review{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

// sinkCall records a single Notify invocation.
type sinkCall struct {
	UserID   uuid.UUID
	TypeCode string
	Message  string
	Metadata map[string]interface{}
}

// recordingSink captures notifications so tests can assert on fan-out.
type recordingSink struct {
	calls []sinkCall
}

func (s *recordingSink) Notify(ctx context.Context, userID uuid.UUID, typeCode, message string, metadata map[string]interface{}) {
	s.calls = append(s.calls, sinkCall{UserID: userID, TypeCode: typeCode, Message: message, Metadata: metadata})
}

func (s *recordingSink) byType(typeCode string) []sinkCall {
	var out []sinkCall
	for _, c := range s.calls {
		if c.TypeCode == typeCode {
			out = append(out, c)
		}
	}
	return out
}

// nopLogger satisfies ILogger without touching the filesystem.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// capturePublisher records payloads handed to Publish.
type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

// --- fixtures ---

func seedUser(t *testing.T, db *gorm.DB, role string) *model.User {
	t.Helper()
	u := &model.User{
		Id:           uuid.New(),
		Email:        fmt.Sprintf("%s-%s@example.com", role, uuid.New().String()[:8]),
		PasswordHash: "x",
		FullName:     "Test " + role,
		Role:         role,
		Active:       true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedService(t *testing.T, db *gorm.DB, name string, active bool) *model.Service {
	t.Helper()
	s := &model.Service{
		Id:            uuid.New(),
		Name:          name + " " + uuid.New().String()[:8],
		BasePrice:     499,
		EstimatedTime: 60,
		IsActive:      active,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

func seedCustomer(t *testing.T, db *gorm.DB) (*model.User, *model.Customer) {
	t.Helper()
	u := seedUser(t, db, "customer")
	c := &model.Customer{
		Id:      uuid.New(),
		UserId:  u.Id,
		Address: "12 Test Lane",
		Pincode: "560001",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u, c
}

func seedProfessional(t *testing.T, db *gorm.DB, serviceId uuid.UUID, verification string) (*model.User, *model.Professional) {
	t.Helper()
	u := seedUser(t, db, "professional")
	p := &model.Professional{
		Id:              uuid.New(),
		UserId:          u.Id,
		ServiceId:       serviceId,
		YearsExperience: 3,
		Verification:    verification,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed professional: %v", err)
	}
	return u, p
}

func seedRequest(t *testing.T, db *gorm.DB, serviceId, customerId uuid.UUID, status string, scheduled time.Time) *model.ServiceRequest {
	t.Helper()
	r := &model.ServiceRequest{
		Id:            uuid.New(),
		ServiceId:     serviceId,
		CustomerId:    customerId,
		Status:        status,
		RequestDate:   time.Now(),
		ScheduledDate: scheduled,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return r
}

func assignRequest(t *testing.T, db *gorm.DB, requestId, professionalId uuid.UUID) {
	t.Helper()
	err := db.Model(&model.ServiceRequest{}).
		Where("id = ?", requestId).
		Updates(map[string]interface{}{"status": "assigned", "professional_id": professionalId}).Error
	if err != nil {
		t.Fatalf("assign request: %v", err)
	}
}

func requestStatus(t *testing.T, db *gorm.DB, requestId uuid.UUID) string {
	t.Helper()
	var r model.ServiceRequest
	if err := db.First(&r, "id = ?", requestId).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	return r.Status
}
