package logger

// Most non-error log messages are given a message ID that can be used to set
// the log level for that message. Errors do not get a message ID because you
// cannot turn errors into non-errors (otherwise the compilation would
// incorrectly succeed). Some internal log messages do not get a message ID
// because they are part of verbose and/or internal debugging output. These
// messages use "MsgID_None" instead.
//
// This list only carries the IDs a real call site in this module emits;
// every one below is wired into a diagnostic, not merely reserved for one.
type MsgID = uint8

const (
	MsgID_None MsgID = iota

	// Deprecations (things that still compile today but will eventually
	// become errors in a future language version)
	MsgID_Deprecation_RelativeCanonicalURL

	// Module system
	MsgID_Module_ShadowedByForward

	MsgID_END // Keep this at the end (used only for tests)
)

func StringToMsgIDs(str string, logLevel LogLevel, overrides map[MsgID]LogLevel) {
	switch str {
	case "relative-canonical":
		overrides[MsgID_Deprecation_RelativeCanonicalURL] = logLevel
	case "shadowed-by-forward":
		overrides[MsgID_Module_ShadowedByForward] = logLevel

	default:
		// Ignore invalid entries since this message id may have
		// been renamed/removed since when this code was written
	}
}

func MsgIDToString(id MsgID) string {
	switch id {
	case MsgID_Deprecation_RelativeCanonicalURL:
		return "relative-canonical"
	case MsgID_Module_ShadowedByForward:
		return "shadowed-by-forward"
	}

	return ""
}

// Some message IDs are more diverse internally than externally (in case we
// want to expand the set of them later on). So just map these to the largest
// one arbitrarily since you can't tell the difference externally anyway.
func StringToMaximumMsgID(id string) MsgID {
	overrides := make(map[MsgID]LogLevel)
	maxID := MsgID_None
	StringToMsgIDs(id, LevelInfo, overrides)
	for id := range overrides {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}
