package database

import (
	"time"

	"github.com/dbehnke/gps-navdata/pkg/gps"
	"gorm.io/gorm"
)

// EphemerisRecord is the latest known ephemeris for one SV, merged across
// whichever of Ephemeris-1/2/3 subframes have been decoded for it. Fields
// are grouped by the subframe that supplies them; UpsertEphemeris only
// touches the group matching the subframe it was given.
type EphemerisRecord struct {
	SVID uint8 `gorm:"primarykey" json:"svid"`

	// Ephemeris-1
	IODC       uint16  `json:"iodc"`
	WeekNumber uint16  `json:"week_number"`
	URAIndex   uint8   `json:"ura_index"`
	SVHealth   uint8   `json:"sv_health"`
	TGD        float64 `json:"tgd"`
	Toc        uint32  `json:"toc"`
	Af2        float64 `json:"af2"`
	Af1        float64 `json:"af1"`
	Af0        float64 `json:"af0"`

	// Ephemeris-2
	IODE2        uint8   `json:"iode2"`
	Crs          float64 `json:"crs"`
	DeltaN       float64 `json:"delta_n"`
	M0           float64 `json:"m0"`
	Cuc          float64 `json:"cuc"`
	Eccentricity float64 `json:"eccentricity"`
	Cus          float64 `json:"cus"`
	SqrtA        float64 `json:"sqrt_a"`
	Toe          uint32  `json:"toe"`
	FitInterval  bool    `json:"fit_interval"`
	AODO         uint8   `json:"aodo"`

	// Ephemeris-3
	IODE3    uint8   `json:"iode3"`
	Cic      float64 `json:"cic"`
	Omega0   float64 `json:"omega0"`
	Cis      float64 `json:"cis"`
	I0       float64 `json:"i0"`
	Crc      float64 `json:"crc"`
	Omega    float64 `json:"omega"`
	OmegaDot float64 `json:"omega_dot"`
	IDot     float64 `json:"idot"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for EphemerisRecord.
func (EphemerisRecord) TableName() string {
	return "ephemerides"
}

// applyEphemeris1 copies an Ephemeris1 subframe's fields into the record.
func (r *EphemerisRecord) applyEphemeris1(e gps.Ephemeris1) {
	r.IODC = e.IODC
	r.WeekNumber = e.WeekNumber
	r.URAIndex = e.URAIndex
	r.SVHealth = e.SVHealth
	r.TGD = e.TGD
	r.Toc = e.Toc
	r.Af2 = e.Af2
	r.Af1 = e.Af1
	r.Af0 = e.Af0
}

// applyEphemeris2 copies an Ephemeris2 subframe's fields into the record.
func (r *EphemerisRecord) applyEphemeris2(e gps.Ephemeris2) {
	r.IODE2 = e.IODE
	r.Crs = e.Crs
	r.DeltaN = e.DeltaN
	r.M0 = e.M0
	r.Cuc = e.Cuc
	r.Eccentricity = e.Eccentricity
	r.Cus = e.Cus
	r.SqrtA = e.SqrtA
	r.Toe = e.Toe
	r.FitInterval = e.FitInterval
	r.AODO = e.AODO
}

// applyEphemeris3 copies an Ephemeris3 subframe's fields into the record.
func (r *EphemerisRecord) applyEphemeris3(e gps.Ephemeris3) {
	r.Cic = e.Cic
	r.Omega0 = e.Omega0
	r.Cis = e.Cis
	r.I0 = e.I0
	r.Crc = e.Crc
	r.Omega = e.Omega
	r.OmegaDot = e.OmegaDot
	r.IODE3 = e.IODE
	r.IDot = e.IDot
}

// AlmanacRecord is the latest known almanac entry for one SV, sourced from
// either a Frame-4 (SVs 25..32) or Frame-5 (SVs 1..24) almanac page.
type AlmanacRecord struct {
	SVID         uint8     `gorm:"primarykey" json:"svid"`
	DataID       uint8     `json:"data_id"`
	Eccentricity float64   `json:"eccentricity"`
	Toa          uint32    `json:"toa"`
	DeltaI       float64   `json:"delta_i"`
	OmegaDot     float64   `json:"omega_dot"`
	Health       uint8     `json:"health"`
	SqrtA        float64   `json:"sqrt_a"`
	Omega0       float64   `json:"omega0"`
	Omega        float64   `json:"omega"`
	M0           float64   `json:"m0"`
	Af0          float64   `json:"af0"`
	Af1          float64   `json:"af1"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for AlmanacRecord.
func (AlmanacRecord) TableName() string {
	return "almanacs"
}

// toAlmanacRecord projects a decoded Almanac onto the persisted record shape.
func toAlmanacRecord(a gps.Almanac) AlmanacRecord {
	return AlmanacRecord{
		SVID:         a.SVID,
		DataID:       a.DataID,
		Eccentricity: a.Eccentricity,
		Toa:          a.Toa,
		DeltaI:       a.DeltaI,
		OmegaDot:     a.OmegaDot,
		Health:       a.Health,
		SqrtA:        a.SqrtA,
		Omega0:       a.Omega0,
		Omega:        a.Omega,
		M0:           a.M0,
		Af0:          a.Af0,
		Af1:          a.Af1,
	}
}

// FrameLog is an append-only record of one decoded subframe, kept for the
// web dashboard's recent-activity feed and for diagnosing resync behavior.
type FrameLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SVID       uint8     `gorm:"index" json:"svid"`
	FrameID    uint8     `gorm:"index" json:"frame_id"`
	PageID     uint8     `json:"page_id"`
	TOWSeconds uint32    `json:"tow_seconds"`
	ReceivedAt time.Time `gorm:"index" json:"received_at"`
}

// TableName specifies the table name for FrameLog.
func (FrameLog) TableName() string {
	return "frame_log"
}

// BeforeCreate stamps ReceivedAt when the caller leaves it zero.
func (f *FrameLog) BeforeCreate(tx *gorm.DB) error {
	if f.ReceivedAt.IsZero() {
		f.ReceivedAt = time.Now()
	}
	return nil
}
