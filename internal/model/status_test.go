package model

import "testing"

func TestLoadStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusLoading, false},
		{LoadStatusReady, true},
		{LoadStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestScaleStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ScaleStatus
		expected bool
	}{
		{ScaleStatusIdle, false},
		{ScaleStatusPending, true},
		{ScaleStatusSucceeded, false},
		{ScaleStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ScaleStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestScaleStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ScaleStatus
		expected bool
	}{
		{ScaleStatusIdle, false},
		{ScaleStatusPending, false},
		{ScaleStatusSucceeded, true},
		{ScaleStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ScaleStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_String(t *testing.T) {
	status := LoadStatusReady
	expected := "ready"
	result := status.String()

	if result != expected {
		t.Errorf("LoadStatus.String() = %s, expected %s", result, expected)
	}
}
