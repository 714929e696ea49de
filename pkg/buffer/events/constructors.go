package events

import "time"

func Error(loggerName, message string, err error) Event {
	event := Event{
		Level:     LevelError,
		Logger:    loggerName,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	return event
}

func Warning(loggerName, message string) Event {
	return Event{
		Level:     LevelWarning,
		Logger:    loggerName,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func Info(loggerName, message string) Event {
	return Event{
		Level:     LevelInfo,
		Logger:    loggerName,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func Debug(loggerName, message string) Event {
	return Event{
		Level:     LevelDebug,
		Logger:    loggerName,
		Message:   message,
		Timestamp: time.Now(),
	}
}
