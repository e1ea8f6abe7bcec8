package database

import (
	"time"

	"github.com/dbehnke/gps-navdata/pkg/gps"
	"gorm.io/gorm"
)

// FrameRepository handles persistence of decoded GPS navigation data:
// the latest ephemeris and almanac per SV, and an append-only frame log.
type FrameRepository struct {
	db *gorm.DB
}

// NewFrameRepository creates a new frame repository.
func NewFrameRepository(db *gorm.DB) *FrameRepository {
	return &FrameRepository{db: db}
}

// UpsertEphemeris merges the fields of one decoded Ephemeris1/2/3 subframe
// into the SV's ephemeris row, creating it on first sight. Subframes other
// than the three ephemeris types are rejected.
func (r *FrameRepository) UpsertEphemeris(svID uint8, sf gps.Subframe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rec EphemerisRecord
		err := tx.Where("svid = ?", svID).First(&rec).Error
		switch {
		case err == nil:
		case err == gorm.ErrRecordNotFound:
			rec = EphemerisRecord{SVID: svID}
		default:
			return err
		}

		switch e := sf.(type) {
		case gps.Ephemeris1:
			rec.applyEphemeris1(e)
		case gps.Ephemeris2:
			rec.applyEphemeris2(e)
		case gps.Ephemeris3:
			rec.applyEphemeris3(e)
		default:
			return gps.ErrUnknownFrameType
		}
		rec.UpdatedAt = time.Now()

		return tx.Save(&rec).Error
	})
}

// GetEphemeris retrieves the merged ephemeris row for one SV.
func (r *FrameRepository) GetEphemeris(svID uint8) (*EphemerisRecord, error) {
	var rec EphemerisRecord
	if err := r.db.Where("svid = ?", svID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListEphemerides returns every SV's latest ephemeris row.
func (r *FrameRepository) ListEphemerides() ([]EphemerisRecord, error) {
	var recs []EphemerisRecord
	err := r.db.Order("svid").Find(&recs).Error
	return recs, err
}

// UpsertAlmanac creates or replaces the almanac row for the SV named by a.
func (r *FrameRepository) UpsertAlmanac(a gps.Almanac) error {
	rec := toAlmanacRecord(a)
	rec.UpdatedAt = time.Now()
	return r.db.Save(&rec).Error
}

// GetAlmanac retrieves the almanac row for one SV.
func (r *FrameRepository) GetAlmanac(svID uint8) (*AlmanacRecord, error) {
	var rec AlmanacRecord
	if err := r.db.Where("svid = ?", svID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAlmanacs returns every SV's latest almanac row.
func (r *FrameRepository) ListAlmanacs() ([]AlmanacRecord, error) {
	var recs []AlmanacRecord
	err := r.db.Order("svid").Find(&recs).Error
	return recs, err
}

// RecordFrame appends one decoded subframe to the frame log.
func (r *FrameRepository) RecordFrame(entry *FrameLog) error {
	return r.db.Create(entry).Error
}

// GetRecentFrames retrieves the most recent N frame log entries.
func (r *FrameRepository) GetRecentFrames(limit int) ([]FrameLog, error) {
	var frames []FrameLog
	err := r.db.Order("received_at DESC").Limit(limit).Find(&frames).Error
	return frames, err
}

// GetRecentFramesBySV retrieves the most recent N frame log entries for one SV.
func (r *FrameRepository) GetRecentFramesBySV(svID uint8, limit int) ([]FrameLog, error) {
	var frames []FrameLog
	err := r.db.Where("svid = ?", svID).
		Order("received_at DESC").
		Limit(limit).
		Find(&frames).Error
	return frames, err
}

// DeleteFramesOlderThan deletes frame log entries older than the given time.
func (r *FrameRepository) DeleteFramesOlderThan(before time.Time) (int64, error) {
	result := r.db.Where("received_at < ?", before).Delete(&FrameLog{})
	return result.RowsAffected, result.Error
}
