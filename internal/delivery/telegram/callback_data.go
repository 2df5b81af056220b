package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionConfirm = "confirm"
)

// Confirm sub-actions.
const (
	confirmYes = "yes"
	confirmNo  = "no"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildConfirmCallback builds callback data for answering the close match of
// question quizID.
func buildConfirmCallback(quizID int64, accept bool) string {
	choice := confirmNo
	if accept {
		choice = confirmYes
	}
	return callbackData{
		Action: actionConfirm,
		Params: []string{choice, strconv.FormatInt(quizID, 10)},
	}.encode()
}
