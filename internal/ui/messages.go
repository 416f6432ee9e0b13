package ui

import "assetcreator/internal/sink"

// focusQueryMsg asks the model to honour a pending focus request
type focusQueryMsg struct{}

// assetCreatedMsg is sent when the sink wrote the asset
type assetCreatedMsg struct {
	result sink.Result
}

// commitFailedMsg is sent when the sink refused or failed
type commitFailedMsg struct {
	err error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg stops View output while an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg restarts View output
type resumeRenderingMsg struct{}
