package logging

import "log/slog"

// Domain identifiers

func Room(id string) slog.Attr {
	return slog.String("room_id", id)
}

func Conn(id string) slog.Attr {
	return slog.String("conn_id", id)
}

func Sender(name string) slog.Attr {
	return slog.String("sender", name)
}

func MsgType(t string) slog.Attr {
	return slog.String("msg_type", t)
}

func Category(c string) slog.Attr {
	return slog.String("category", c)
}

func Members(n int) slog.Attr {
	return slog.Int("members", n)
}

func Size(n int) slog.Attr {
	return slog.Int("payload_size", n)
}

// Error handling

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
