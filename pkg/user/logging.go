package user

import (
	"log/slog"

	cfdp "github.com/go-cfdp/gocfdp"
)

// LoggingUser is a default User implementation that logs every indication
// via log/slog, the same split teacher's pkg/sdo/server.go uses between
// Info-level transaction logs and Debug-level per-segment logs. It is
// meant as a usable default and a demonstration, not a required
// dependency — any host can implement User directly.
type LoggingUser struct {
	logger *slog.Logger
}

// NewLoggingUser returns a LoggingUser. A nil logger defaults to
// slog.Default(), matching the nil-logger fallback teacher's
// sdo.NewSDOServer uses.
func NewLoggingUser(logger *slog.Logger) *LoggingUser {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingUser{logger: logger.With("component", "cfdp-user")}
}

func (u *LoggingUser) TransactionIndication(id cfdp.TransactionId) {
	u.logger.Info("transaction started", "transaction", id)
}

func (u *LoggingUser) EOFSentIndication(id cfdp.TransactionId) {
	u.logger.Info("eof sent", "transaction", id)
}

func (u *LoggingUser) TransactionFinishedIndication(params TransactionFinishedParams) {
	u.logger.Info("transaction finished",
		"transaction", params.TransactionId,
		"condition", params.ConditionCode,
		"fileStatus", params.FileStatus,
		"deliveryCode", params.DeliveryCode,
	)
}

func (u *LoggingUser) MetadataRecvIndication(params MetadataRecvParams) {
	u.logger.Info("metadata received",
		"transaction", params.TransactionId,
		"sourceFile", params.SourceFileName,
		"destFile", params.DestFileName,
		"fileSize", params.FileSize,
	)
}

func (u *LoggingUser) FileSegmentRecvIndication(params FileSegmentRecvParams) {
	u.logger.Debug("file segment received",
		"transaction", params.TransactionId,
		"offset", params.Offset,
		"length", params.Length,
	)
}

func (u *LoggingUser) EOFRecvIndication(id cfdp.TransactionId) {
	u.logger.Info("eof received", "transaction", id)
}

var _ User = (*LoggingUser)(nil)
