package kotei

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from cfg. Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// AssertionError is the panic value raised for invalid arguments when the
// storage runs with Config.Debug set.
type AssertionError struct {
	Op  string
	Eid Eid
	Cid Cid
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("kotei: %s: invalid eid %d or cid %d", e.Op, e.Eid, e.Cid)
}

// assertInvalid reports an invalid (eid, cid) pair passed to op. In debug
// mode it panics; otherwise the caller treats the call as a no-op.
func (s *Storage) assertInvalid(op string, cid Cid, eid Eid) {
	if s.cfg.Debug {
		panic(&AssertionError{Op: op, Eid: eid, Cid: cid})
	}
	s.log.Debug("invalid argument",
		zap.String("op", op),
		zap.Uint32("eid", uint32(eid)),
		zap.Uint32("cid", uint32(cid)),
	)
}

// LogCid logs how many entities hold cid and the first and last of them.
// Nothing is logged for an empty list.
func (s *Storage) LogCid(cid Cid) {
	eids := s.GetAll(cid)
	if len(eids) == 0 {
		return
	}
	s.log.Info("component holders",
		zap.Uint32("cid", uint32(cid)),
		zap.Int("count", len(eids)),
		zap.Uint32("first", uint32(eids[0])),
		zap.Uint32("last", uint32(eids[len(eids)-1])),
	)
}

// LogAll calls LogCid for every component type.
func (s *Storage) LogAll() {
	for cid := 0; cid < s.numCids; cid++ {
		s.LogCid(Cid(cid))
	}
}
