package services

import (
	"context"
	"log/slog"

	"github.com/404reese/vynk/internal/core/contracts"
	"github.com/404reese/vynk/internal/core/domain"
	"github.com/404reese/vynk/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type IRelayService interface {
	// Connect registers the client in its room.
	Connect(ctx context.Context, c contracts.Client)
	// Disconnect removes the client from its room. Safe to call for a
	// client that never joined or already left.
	Disconnect(ctx context.Context, c contracts.Client)
	// Relay classifies raw for the logs and forwards it, byte for byte,
	// to every other member of the sender's room. Classification never
	// changes what gets delivered.
	Relay(ctx context.Context, sender contracts.Client, raw []byte)
	// RoomStats snapshots the live rooms for introspection endpoints.
	RoomStats(ctx context.Context) domain.RoomStats
}

var tracer = otel.Tracer("relay-service")

type RelayService struct {
	registry contracts.Registry
	log      *slog.Logger
}

func NewRelayService(log *slog.Logger, registry contracts.Registry) *RelayService {
	return &RelayService{
		log:      log,
		registry: registry,
	}
}

func (s *RelayService) Connect(ctx context.Context, c contracts.Client) {
	ctx, span := tracer.Start(ctx, "RelayService.Connect", trace.WithAttributes(
		attribute.String("room.id", c.Room()),
		attribute.String("conn.id", c.ID()),
	))
	defer span.End()
	s.registry.Join(c)
	members := s.registry.Members(c.Room())
	span.SetAttributes(attribute.Int("room.members", members))
	s.log.InfoContext(ctx, "relay - connect - client joined",
		logging.Room(c.Room()), logging.Conn(c.ID()), logging.Members(members))
}

func (s *RelayService) Disconnect(ctx context.Context, c contracts.Client) {
	ctx, span := tracer.Start(ctx, "RelayService.Disconnect", trace.WithAttributes(
		attribute.String("room.id", c.Room()),
		attribute.String("conn.id", c.ID()),
	))
	defer span.End()
	s.registry.Leave(c)
	members := s.registry.Members(c.Room())
	span.SetAttributes(attribute.Int("room.members", members))
	s.log.InfoContext(ctx, "relay - disconnect - client left",
		logging.Room(c.Room()), logging.Conn(c.ID()), logging.Members(members))
}

func (s *RelayService) Relay(ctx context.Context, sender contracts.Client, raw []byte) {
	ctx, span := tracer.Start(ctx, "RelayService.Relay", trace.WithAttributes(
		attribute.String("room.id", sender.Room()),
		attribute.String("conn.id", sender.ID()),
		attribute.Int("payload_size", len(raw)),
	))
	defer span.End()

	env := domain.DecodeEnvelope(raw)
	category := env.Category()
	span.SetAttributes(
		attribute.String("message.type", env.Type),
		attribute.String("message.category", string(category)),
	)

	switch category {
	case domain.CategoryContent:
		s.log.InfoContext(ctx, "relay - message - content relayed",
			logging.Room(sender.Room()), logging.Conn(sender.ID()),
			logging.Sender(env.DisplaySender()), logging.MsgType(env.Type),
			logging.Category(string(category)), logging.Size(len(raw)))
	case domain.CategorySignal:
		s.log.DebugContext(ctx, "relay - message - signal relayed",
			logging.Room(sender.Room()), logging.Conn(sender.ID()),
			logging.Sender(env.DisplaySender()), logging.MsgType(env.Type),
			logging.Category(string(category)))
	default:
		// Still relayed: unknown and unparseable payloads pass through
		// untouched, they are only louder in the logs.
		s.log.WarnContext(ctx, "relay - message - unknown type relayed",
			logging.Room(sender.Room()), logging.Conn(sender.ID()),
			logging.MsgType(env.Type), logging.Category(string(category)),
			logging.Size(len(raw)))
	}

	s.registry.Broadcast(ctx, sender, raw)
}

func (s *RelayService) RoomStats(ctx context.Context) domain.RoomStats {
	_, span := tracer.Start(ctx, "RelayService.RoomStats")
	defer span.End()
	rooms := s.registry.Stats()
	stats := domain.RoomStats{
		Rooms:     rooms,
		RoomCount: len(rooms),
	}
	for _, members := range rooms {
		stats.Connections += members
	}
	span.SetAttributes(
		attribute.Int("room.count", stats.RoomCount),
		attribute.Int("conn.count", stats.Connections),
	)
	return stats
}
