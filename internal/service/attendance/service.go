package attendance

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/qr"
)

// qrImageSize is the pixel edge of the generated check-in QR code.
const qrImageSize = 256

type Service struct {
	attendance.Repository
	tokenStore          attendance.TokenStore
	branchRepository    branch.Repository
	personnelRepository personnel.Repository

	qrSecret string
	tokenTTL time.Duration

	now func() time.Time
}

func NewService(
	repository attendance.Repository,
	tokenStore attendance.TokenStore,
	branchRepository branch.Repository,
	personnelRepository personnel.Repository,
	qrSecret string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		Repository:          repository,
		tokenStore:          tokenStore,
		branchRepository:    branchRepository,
		personnelRepository: personnelRepository,
		qrSecret:            qrSecret,
		tokenTTL:            tokenTTL,
		now:                 time.Now,
	}
}

// GenerateQR issues a fresh check-in token for one branch and renders it as
// a QR code. The token lives in the store for its TTL; older tokens for the
// branch stay valid until they expire on their own.
func (s *Service) GenerateQR(ctx context.Context, branchID string) (attendance.QRCode, error) {
	b, err := s.branchRepository.GetByID(ctx, branchID)
	if err != nil {
		return attendance.QRCode{}, fmt.Errorf("failed to get branch: %w", err)
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return attendance.QRCode{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	now := s.now()
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%x|%s",
		b.ID, now.Format("2006-01-02"), nonce, s.qrSecret)))
	token := hex.EncodeToString(sum[:])

	if err := s.tokenStore.Put(ctx, token, b.ID, s.tokenTTL); err != nil {
		return attendance.QRCode{}, fmt.Errorf("failed to store qr token: %w", err)
	}

	image, err := qr.EncodePNG(token, qrImageSize)
	if err != nil {
		return attendance.QRCode{}, fmt.Errorf("failed to render qr code: %w", err)
	}

	return attendance.QRCode{
		BranchID:  b.ID,
		Token:     token,
		ExpiresAt: now.Add(s.tokenTTL),
		ImagePNG:  image,
	}, nil
}

// CheckIn records an attendance check-in against the branch the scanned
// token belongs to. One check-in per personnel per calendar day.
func (s *Service) CheckIn(ctx context.Context, personnelID, token string) (attendance.Record, error) {
	branchID, err := s.tokenStore.BranchFor(ctx, token)
	if err != nil {
		return attendance.Record{}, err
	}

	if _, err := s.personnelRepository.GetByID(ctx, personnelID); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get personnel: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	_, err = s.Repository.GetByPersonnelAndDate(ctx, personnelID, today)
	if err == nil {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, fmt.Errorf("failed to check existing record: %w", err)
	}

	record, err := s.Repository.Create(ctx, attendance.Record{
		PersonnelID: personnelID,
		BranchID:    branchID,
		Date:        today,
		CheckIn:     now,
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// CheckOut closes today's open attendance record.
func (s *Service) CheckOut(ctx context.Context, personnelID string) (attendance.Record, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.Repository.GetByPersonnelAndDate(ctx, personnelID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Record{}, attendance.ErrNotCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record.CheckOut != nil {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}

	if err := s.Repository.SetCheckOut(ctx, record.ID, now); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	record.CheckOut = &now
	return record, nil
}

func (s *Service) DailyRecords(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return s.Repository.ListByDate(ctx, date)
}

func (s *Service) PersonnelRecords(ctx context.Context, personnelID string, from, to time.Time) ([]attendance.Record, error) {
	return s.Repository.ListByPersonnel(ctx, personnelID, from, to)
}
