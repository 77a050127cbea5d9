package cfdp_test

// Exercises spec.md §8's round-trip testable property end-to-end: every PDU
// the Source handler emits is handed to the Destination handler via
// PassPacket, with no transport layer in between (both run against the same
// process's MemoryFilestore, standing in for two entities sharing one
// virtual filesystem for test purposes).

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/seqnum"
	"github.com/go-cfdp/gocfdp/pkg/dest"
	"github.com/go-cfdp/gocfdp/pkg/filestore"
	"github.com/go-cfdp/gocfdp/pkg/mib"
	"github.com/go-cfdp/gocfdp/pkg/request"
	"github.com/go-cfdp/gocfdp/pkg/source"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// runRoundTrip drives src to completion, feeding every emitted PDU straight
// into dst via PassPacket, and drains dst after each one. It returns the
// Finished PDU dst eventually emits, or nil if closure was not requested.
func runRoundTrip(t *testing.T, src *source.Handler, dst *dest.Handler) *cfdp.FinishedPdu {
	t.Helper()

	for i := 0; i < 256; i++ {
		res, err := src.StateMachine()
		require.NoError(t, err)

		if res.States.PacketReady {
			require.NoError(t, dst.PassPacket(res.Holder))
			src.ConfirmPacketSent()
			require.NoError(t, src.AdvanceFsm())
		}

		dres, err := dst.StateMachine()
		require.NoError(t, err)
		if dres.States.PacketReady {
			finished, ferr := dres.Holder.AsFinished()
			require.NoError(t, ferr)
			require.NoError(t, src.PassPacket(dres.Holder))
			dst.ConfirmPacketSent()
			require.NoError(t, dst.AdvanceFsm())

			// Let the source handler observe the Finished PDU and
			// complete its own closure wait.
			for j := 0; j < 8; j++ {
				sres, serr := src.StateMachine()
				require.NoError(t, serr)
				if sres.States.State == source.StateIdle {
					break
				}
			}
			return finished
		}

		if res.States.State == source.StateIdle && dres.States.State == dest.StateIdle {
			return nil
		}
	}
	t.Fatal("round trip did not settle within bound")
	return nil
}

func newRoundTripHandlers(t *testing.T, closure bool) (*source.Handler, *dest.Handler, *filestore.MemoryFilestore, request.Wrapper, mib.RemoteEntityCfg) {
	t.Helper()

	sourceId, err := cfdp.NewEntityId(1, cfdp.Width1)
	require.NoError(t, err)
	destId, err := cfdp.NewEntityId(2, cfdp.Width1)
	require.NoError(t, err)

	vfs := filestore.NewMemoryFilestore()
	u := user.NewLoggingUser(nil)

	srcLocalCfg := mib.LocalEntityCfg{LocalEntityId: sourceId}
	src := source.New(srcLocalCfg, u, vfs, seqnum.NewCounter(32), nil)

	dstLocalCfg := mib.LocalEntityCfg{
		LocalEntityId: destId,
		IndicationCfg: mib.IndicationCfg{FileSegmentRecvIndicationRequired: true, EOFRecvIndicationRequired: true},
	}
	dst := dest.New(dstLocalCfg, u, vfs, nil)

	remoteCfg := mib.RemoteEntityCfg{
		RemoteEntityId:          destId,
		MaxFileSegmentLen:       1024,
		CrcType:                 cfdp.ChecksumCRC32C,
		DefaultTransmissionMode: cfdp.TransmissionModeUnacknowledged,
		ClosureRequested:        closure,
	}
	req := request.NewPutWrapper(request.PutRequest{Cfg: request.PutRequestCfg{
		DestinationId: destId,
		SourceFile:    "/src",
		DestFile:      "/dst",
	}})
	return src, dst, vfs, req, remoteCfg
}

func TestRoundTripThreeSegmentsNoClosure(t *testing.T) {
	src, dst, vfs, req, remoteCfg := newRoundTripHandlers(t, false)

	contents := make([]byte, 3072)
	for i := range contents {
		contents[i] = byte(i % 256)
	}
	vfs.Put("/src", contents)

	ok, err := src.StartTransaction(req, remoteCfg)
	require.NoError(t, err)
	require.True(t, ok)

	finished := runRoundTrip(t, src, dst)
	assert.Nil(t, finished)

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Equal(t, contents, got)
}

func TestRoundTripWithClosureRequested(t *testing.T) {
	src, dst, vfs, req, remoteCfg := newRoundTripHandlers(t, true)

	contents := []byte("the quick brown fox jumps over the lazy dog")
	vfs.Put("/src", contents)

	ok, err := src.StartTransaction(req, remoteCfg)
	require.NoError(t, err)
	require.True(t, ok)

	finished := runRoundTrip(t, src, dst)
	require.NotNil(t, finished)
	assert.Equal(t, cfdp.DeliveryDataComplete, finished.DeliveryCode)
	assert.Equal(t, cfdp.FileStatusRetained, finished.FileStatus)

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Equal(t, contents, got)
}

func TestRoundTripEmptyFile(t *testing.T) {
	src, dst, vfs, req, remoteCfg := newRoundTripHandlers(t, false)
	vfs.Put("/src", []byte{})

	ok, err := src.StartTransaction(req, remoteCfg)
	require.NoError(t, err)
	require.True(t, ok)

	runRoundTrip(t, src, dst)

	got, ok := vfs.Get("/dst")
	require.True(t, ok)
	assert.Empty(t, got)
}
