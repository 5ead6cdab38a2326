// Package publisher turns engine command outcomes into durable admin events.
//
// It is registered as the engine's result handler: every administrative
// outcome is serialized and appended to the event log, trading outcomes are
// dropped. Subscribers never see an event before it is durable.
package publisher

import (
	"context"

	"github.com/dmitrijs2005/admingate/internal/engine"
	"github.com/dmitrijs2005/admingate/internal/eventlog"
	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/metrics"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"google.golang.org/protobuf/proto"
)

type Publisher struct {
	log    eventlog.Log
	logger logging.Logger
}

func New(log eventlog.Log, logger logging.Logger) *Publisher {
	return &Publisher{log: log, logger: logger}
}

// CodeOf maps an engine result code to the wire enum.
func CodeOf(c engine.ResultCode) pb.ResultCode {
	switch c {
	case engine.Success:
		return pb.ResultCode_SUCCESS
	case engine.AlreadyExists:
		return pb.ResultCode_USER_ALREADY_EXISTS
	default:
		return pb.ResultCode_OTHER
	}
}

// Handle is the engine result handler. It must never panic: a failed append
// is logged and counted, the engine keeps running.
func (p *Publisher) Handle(res engine.Result) {
	cmd, ok := res.Command.(engine.AddUser)
	if !ok {
		// trading outcome, not an administrative event
		return
	}

	record := &pb.CommandResult{
		Uid:        cmd.UID,
		ResultCode: CodeOf(res.Code),
		Message:    res.Message,
	}

	data, err := proto.Marshal(record)
	if err != nil {
		metrics.EventAppendFailuresTotal.Inc()
		p.logger.Error(context.Background(), "marshaling command outcome", "error", err)
		return
	}

	ctx := context.Background()
	idx, err := p.log.Append(ctx, data)
	if err != nil {
		metrics.EventAppendFailuresTotal.Inc()
		p.logger.Error(ctx, "appending command outcome", "error", err, "uid", cmd.UID)
		return
	}

	metrics.EventsPublishedTotal.Inc()
	p.logger.Debug(ctx, "event published", "index", idx, "uid", cmd.UID, "code", res.Code.String())
}
