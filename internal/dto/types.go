package dto

import (
	"encoding/json"

	"github.com/ardiansyahrp/jobhub/internal/util"
)

// StringList accepts either a JSON array of strings or a single delimited
// string ("Go, SQL; Docker") and normalizes both into a clean list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = util.CleanList(items)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = util.SplitList(raw)
	return nil
}
