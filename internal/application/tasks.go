package application

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"orgnet/internal/contract"
	"orgnet/internal/domain"
)

// CreateTask submits a createTask call and returns the confirmed outcome with
// the identifier from the TaskCreated event.
func (s *Services) CreateTask(ctx context.Context, description, deadline, assignee string) (domain.Outcome, error) {
	if strings.TrimSpace(description) == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "task description cannot be empty")
	}
	deadlineTS, err := parseDateTime(deadline)
	if err != nil {
		return domain.Outcome{}, err
	}
	if err := validateAddress(assignee); err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.TaskTracker.Pack("createTask",
		description, new(big.Int).SetUint64(deadlineTS), common.HexToAddress(assignee))
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding createTask", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Task,
		Function: "createTask",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	taskID := contract.TaskTracker.ExtractEventID(receipt.Logs, "TaskCreated", "taskId")
	outcome := s.outcome(domain.DomainTask, "create_task", taskID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// UpdateTaskStatus submits an updateTaskStatus call. The status may be given
// by name or by index.
func (s *Services) UpdateTaskStatus(ctx context.Context, taskID uint64, status string) (domain.Outcome, error) {
	idx, err := statusIndex(domain.TaskStatuses, status)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.TaskTracker.Pack("updateTaskStatus", new(big.Int).SetUint64(taskID), idx)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding updateTaskStatus", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Task,
		Function: "updateTaskStatus",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainTask, "update_task_status", taskID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// GetTask reads one task by id.
func (s *Services) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	data, err := contract.TaskTracker.Pack("getTask", new(big.Int).SetUint64(taskID))
	if err != nil {
		return domain.Task{}, domain.WrapError(domain.ErrValidation, "encoding getTask", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Task, data)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := contract.DecodeTask(out)
	if err != nil {
		return domain.Task{}, domain.WrapError(domain.ErrDecoding, "decoding getTask result", err)
	}
	return task, nil
}

// MyTasks reads every task visible to the sender. An empty result is not an
// error.
func (s *Services) MyTasks(ctx context.Context) ([]domain.Task, error) {
	data, err := contract.TaskTracker.Pack("getMyTasks")
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getMyTasks", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Task, data)
	if err != nil {
		return nil, err
	}
	tasks, err := contract.DecodeTaskList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getMyTasks result", err)
	}
	return tasks, nil
}
