package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"card-fraud-system/config"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/services"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CardFraudGRPCServer реализует CardFraudServiceServer поверх сервисов card-service
type CardFraudGRPCServer struct {
	operations services.OperationService
	fraud      services.FraudService
	cards      services.CardService
	alerts     services.AlertService
}

var _ CardFraudServiceServer = (*CardFraudGRPCServer)(nil)

func NewCardFraudGRPCServer(
	operations services.OperationService,
	fraud services.FraudService,
	cards services.CardService,
	alerts services.AlertService,
) *CardFraudGRPCServer {
	return &CardFraudGRPCServer{
		operations: operations,
		fraud:      fraud,
		cards:      cards,
		alerts:     alerts,
	}
}

// RecordOperation принимает {card_id, amount, type, location, timestamp?}.
// amount передается строкой или числом, timestamp - в RFC3339.
func (s *CardFraudGRPCServer) RecordOperation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	opReq, err := operationRequestFromStruct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	logger.LogEvent(logger.EventOperationReceived, services.ServiceCardService, logger.ComponentGRPC, map[string]interface{}{
		"card_id": opReq.CardID,
		"via":     "grpc",
	})

	resp, err := s.operations.RecordOperation(ctx, opReq)
	if err != nil {
		if resp == nil {
			return nil, toStatus(err)
		}
		if resp.Operation != nil {
			log.Printf("gRPC: operation %s recorded with error: %v", resp.Operation.ID, err)
		}
		return nil, withPartialResult(toStatus(err), resp)
	}
	return toStruct(resp)
}

func (s *CardFraudGRPCServer) DetectFraud(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	result, err := s.fraud.DetectFraud(ctx, req.GetValue())
	if err != nil {
		if result == nil {
			return nil, toStatus(err)
		}
		return nil, withPartialResult(toStatus(err), result)
	}
	return toStruct(result)
}

func (s *CardFraudGRPCServer) GetCard(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	card, err := s.cards.GetCard(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(models.NewCardResponse(card, false))
}

// ListAlerts возвращает оповещения карты, при пустом id - все оповещения
func (s *CardFraudGRPCServer) ListAlerts(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	alerts, err := s.alerts.ListAlerts(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(alerts))}
	for _, alert := range alerts {
		st, err := toStruct(alert)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(st))
	}
	return list, nil
}

func operationRequestFromStruct(req *structpb.Struct) (*models.RecordOperationRequest, error) {
	fields := req.GetFields()

	amount, err := decimalField(fields["amount"])
	if err != nil {
		return nil, err
	}

	opReq := &models.RecordOperationRequest{
		CardID:   fields["card_id"].GetStringValue(),
		Amount:   amount,
		Type:     models.OperationType(fields["type"].GetStringValue()),
		Location: fields["location"].GetStringValue(),
	}
	if opReq.CardID == "" {
		return nil, errors.New("card_id is required")
	}

	if raw := fields["timestamp"].GetStringValue(); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp: %w", err)
		}
		opReq.Timestamp = &ts
	}
	return opReq, nil
}

func decimalField(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(kind.StringValue)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount: %w", err)
		}
		return d, nil
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(kind.NumberValue), nil
	}
	return decimal.Zero, errors.New("amount is required")
}

// toStruct переводит JSON-представление модели в structpb.Struct
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return st, nil
}

// toStatus сопоставляет доменные ошибки с кодами gRPC
func toStatus(err error) error {
	switch {
	case errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrAlertNotFound),
		errors.Is(err, services.ErrOperationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, services.ErrCardNotActive),
		errors.Is(err, services.ErrAlreadyActive):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, services.ErrLimitExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidOperation),
		errors.Is(err, services.ErrInvalidLocation),
		errors.Is(err, services.ErrInvalidAlertLevel):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, services.ErrDetectionNotQueued):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	log.Printf("gRPC internal error: %v", err)
	return status.Error(codes.Internal, "internal error")
}

// withPartialResult прикладывает уже примененный результат к статусу ошибки
// как деталь google.protobuf.Struct
func withPartialResult(statusErr error, partial interface{}) error {
	detail, err := toStruct(partial)
	if err != nil {
		return statusErr
	}
	st, err := status.Convert(statusErr).WithDetails(detail)
	if err != nil {
		log.Printf("gRPC: failed to attach partial result: %v", err)
		return statusErr
	}
	return st.Err()
}

// NewServer создает gRPC-сервер с зарегистрированным CardFraudService и reflection API
func NewServer(server CardFraudServiceServer, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	RegisterCardFraudServiceServer(s, server)

	// Включаем reflection API для grpcurl и других инструментов
	reflection.Register(s)
	return s
}

// StartGRPCServer запускает gRPC сервер и блокируется до его остановки
func StartGRPCServer(cfg *config.Config, s *grpc.Server) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	log.Printf("gRPC server listening on port %d", cfg.Server.GRPCPort)
	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %v", err)
	}

	return nil
}
