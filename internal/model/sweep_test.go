package model

import "testing"

func TestSweepStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SweepStatus
		expected bool
	}{
		{SweepStatusPending, false},
		{SweepStatusRunning, false},
		{SweepStatusCompleted, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SweepStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSweepStatus_String(t *testing.T) {
	status := SweepStatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("SweepStatus.String() = %s, expected %s", result, expected)
	}
}
