/*
Package logger provides logging functionality to a cairn app by defining the required behavior in [Logger]
and providing an implementation of it with [CairnLogger].

The Logger interface outputs messages at certain levels of importance.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.

Log messages emitted by [CairnLogger] are composed of a timestamp, log level,
call site, message and log context:

	2022/04/28 15:55:21 [DEBUG] web/static_handler.go:43 'such fun!' log_context: "{"data":{"path":"/assets/app.js"}}"

The log context is a JSON-encoded [*LogContext],
allowing for including additional data inessential to the message proper.

When the file and line number in a log needs to be configurable -
especially with internal packages - [SkipLogger] sets the number of frames
to skip back in order to reach the desired caller.
*/
package logger
