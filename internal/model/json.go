package model

import "encoding/json"

// Older persisted blobs use "large" and "in-progress". Normalize on decode so
// both vocabularies load into the canonical enums.

func (s *GoalSize) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	size, err := ParseGoalSize(raw)
	if err != nil {
		return err
	}
	*s = size
	return nil
}

func (m *MilestoneStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseMilestoneStatus(raw)
	if err != nil {
		return err
	}
	*m = status
	return nil
}
