package dest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/crc"
	"github.com/go-cfdp/gocfdp/pkg/filestore"
	"github.com/go-cfdp/gocfdp/pkg/mib"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// crc32cOf computes the CRC-32C checksum the way the checksum service would,
// for constructing EOF PDUs with a correct checksum in tests.
func crc32cOf(data []byte) uint32 {
	d, err := crc.New(crc.Type32C)
	if err != nil {
		panic(err)
	}
	d.Write(data)
	return d.Sum32()
}

func newTestHandler(t *testing.T) (*Handler, *filestore.MemoryFilestore, cfdp.EntityId, cfdp.EntityId) {
	t.Helper()
	localId, err := cfdp.NewEntityId(2, cfdp.Width1)
	require.NoError(t, err)
	sourceId, err := cfdp.NewEntityId(1, cfdp.Width1)
	require.NoError(t, err)

	localCfg := mib.LocalEntityCfg{LocalEntityId: localId}
	vfs := filestore.NewMemoryFilestore()
	h := New(localCfg, user.NewLoggingUser(nil), vfs, nil)
	return h, vfs, sourceId, localId
}

func baseConfig(sourceId, destId cfdp.EntityId) cfdp.PduConfig {
	return cfdp.PduConfig{
		SourceEntityId:    sourceId,
		DestEntityId:      destId,
		TransactionSeqNum: 7,
		TransMode:         cfdp.TransmissionModeUnacknowledged,
		Direction:         cfdp.DirectionTowardsReceiver,
	}
}

func passMetadata(t *testing.T, h *Handler, cfg cfdp.PduConfig, fileSize uint64, closure bool, checksumType cfdp.ChecksumType) {
	t.Helper()
	err := h.PassPacket(cfdp.NewPduHolder(&cfdp.MetadataPdu{
		Config:           cfg,
		ClosureRequested: closure,
		ChecksumType:     checksumType,
		FileSize:         fileSize,
		SourceFileName:   "/src",
		DestFileName:     "/dst",
	}))
	require.NoError(t, err)
}

func passFileData(t *testing.T, h *Handler, cfg cfdp.PduConfig, offset uint64, data []byte) {
	t.Helper()
	err := h.PassPacket(cfdp.NewPduHolder(&cfdp.FileDataPdu{
		Config:   cfg,
		Offset:   offset,
		FileData: data,
	}))
	require.NoError(t, err)
}

func passEOF(t *testing.T, h *Handler, cfg cfdp.PduConfig, checksum uint32, size uint64) {
	t.Helper()
	err := h.PassPacket(cfdp.NewPduHolder(&cfdp.EofPdu{
		Config:        cfg,
		ConditionCode: cfdp.ConditionNoError,
		FileChecksum:  checksum,
		FileSize:      size,
	}))
	require.NoError(t, err)
}

func driveToIdleOrPacket(t *testing.T, h *Handler) *cfdp.FinishedPdu {
	t.Helper()
	prevStep := Step(255)
	for i := 0; i < 64; i++ {
		res, err := h.StateMachine()
		require.NoError(t, err)
		if res.States.PacketReady {
			finished, ferr := res.Holder.AsFinished()
			require.NoError(t, ferr)
			h.ConfirmPacketSent()
			require.NoError(t, h.AdvanceFsm())
			return finished
		}
		if res.States.State == StateIdle {
			return nil
		}
		if res.States.Step == prevStep {
			return nil
		}
		prevStep = res.States.Step
	}
	t.Fatal("handler did not settle within bound")
	return nil
}

func TestMetadataAcceptedBusiesHandler(t *testing.T) {
	h, _, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)
	passMetadata(t, h, cfg, 3072, false, cfdp.ChecksumCRC32C)

	res, err := h.StateMachine()
	require.NoError(t, err)
	assert.Equal(t, StateBusyClass1Nacked, res.States.State)
	assert.Equal(t, StepReceivingFileData, res.States.Step)
}

func TestReceivesFileDataOutOfOrderAndWritesByOffset(t *testing.T) {
	h, vfs, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	full := make([]byte, 3072)
	for i := range full {
		full[i] = byte(i % 251)
	}

	passMetadata(t, h, cfg, uint64(len(full)), false, cfdp.ChecksumCRC32C)
	passFileData(t, h, cfg, 2048, full[2048:3072])
	passFileData(t, h, cfg, 0, full[0:1024])
	passFileData(t, h, cfg, 1024, full[1024:2048])
	passEOF(t, h, cfg, crc32cOf(full), uint64(len(full)))

	finished := driveToIdleOrPacket(t, h)
	require.Nil(t, finished) // closure not requested: no PDU emitted

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Equal(t, full, got)
}

func TestChecksumMismatchReportedAsFileStatusChecksumFailure(t *testing.T) {
	h, _, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	contents := []byte("0123456789")
	passMetadata(t, h, cfg, uint64(len(contents)), true, cfdp.ChecksumCRC32C)
	passFileData(t, h, cfg, 0, contents)
	passEOF(t, h, cfg, 0xDEADBEEF, uint64(len(contents))) // wrong checksum

	finished := driveToIdleOrPacket(t, h)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.FileStatusChecksumFailure, finished.FileStatus)
	assert.Equal(t, cfdp.DeliveryDataIncomplete, finished.DeliveryCode)
}

func TestSuccessfulTransferEmitsFinishedWhenClosureRequested(t *testing.T) {
	h, _, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	contents := []byte("hello cfdp")
	passMetadata(t, h, cfg, uint64(len(contents)), true, cfdp.ChecksumCRC32C)
	passFileData(t, h, cfg, 0, contents)
	passEOF(t, h, cfg, crc32cOf(contents), uint64(len(contents)))

	finished := driveToIdleOrPacket(t, h)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.DeliveryDataComplete, finished.DeliveryCode)
	assert.Equal(t, cfdp.FileStatusRetained, finished.FileStatus)
}

func TestEOFBeforeAllDataDrainsQueueFirst(t *testing.T) {
	h, vfs, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	contents := []byte("abcdefghij")
	passMetadata(t, h, cfg, uint64(len(contents)), false, cfdp.ChecksumCRC32C)
	// EOF passed before the file data it depends on.
	passEOF(t, h, cfg, crc32cOf(contents), uint64(len(contents)))
	passFileData(t, h, cfg, 0, contents)

	_ = driveToIdleOrPacket(t, h)

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Equal(t, contents, got)
}

func TestEmptyTransferCreatesEmptyDestinationFile(t *testing.T) {
	h, vfs, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	passMetadata(t, h, cfg, 0, true, cfdp.ChecksumNull)
	passEOF(t, h, cfg, crc.NullChecksumU32, 0)

	finished := driveToIdleOrPacket(t, h)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.DeliveryDataComplete, finished.DeliveryCode)
	assert.Equal(t, cfdp.FileStatusRetained, finished.FileStatus)

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestMetadataWithUnsetChecksumTypeDefaultsToNull(t *testing.T) {
	h, _, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	contents := []byte("no checksum type here")
	passMetadata(t, h, cfg, uint64(len(contents)), true, cfdp.ChecksumType(0))
	passFileData(t, h, cfg, 0, contents)
	// The sender also has no checksum to report; EOF carries whatever a
	// null-checksum sender would send.
	passEOF(t, h, cfg, crc.NullChecksumU32, uint64(len(contents)))

	finished := driveToIdleOrPacket(t, h)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.DeliveryDataComplete, finished.DeliveryCode)
	assert.Equal(t, cfdp.FileStatusRetained, finished.FileStatus)
}

func TestCancellingEOFTerminatesTransactionInsteadOfStalling(t *testing.T) {
	h, _, sourceId, localId := newTestHandler(t)
	cfg := baseConfig(sourceId, localId)

	passMetadata(t, h, cfg, 10, true, cfdp.ChecksumCRC32C)
	err := h.PassPacket(cfdp.NewPduHolder(&cfdp.EofPdu{
		Config:        cfg,
		ConditionCode: cfdp.ConditionFileSizeError,
		FileChecksum:  0,
		FileSize:      10,
	}))
	require.NoError(t, err)

	finished := driveToIdleOrPacket(t, h)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.DeliveryDataIncomplete, finished.DeliveryCode)
	assert.Equal(t, cfdp.FileStatusDiscardedFailure, finished.FileStatus)
}

func TestPassPacketRejectsEmptyHolder(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	err := h.PassPacket(cfdp.PduHolder{})
	assert.ErrorIs(t, err, cfdp.ErrPduHolderEmpty)
}
