// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests import
// these shared implementations:
//
//	taskStore := mocks.NewMockTaskStore()
//	taskStore.DeleteFn = func(ctx context.Context, id int64) error {
//	    return errors.New("connection reset")
//	}
//
// MockTaskStore is an in-memory store whose behaviour can be overridden per
// method through its Fn fields. TestifyMockTaskService is a testify/mock
// implementation of service.TaskService for asserting exact calls.
package mocks
