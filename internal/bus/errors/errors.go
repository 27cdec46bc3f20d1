// Package errors provides string codes for error instantiation.

package errors

const (
	AMQPNotConfiguredError       = "AMQP address is not configured"
	AMQPConnectionError          = "could not connect to AMQP"
	AMQPChannelOpeningError      = "could not open an AMQP channel"
	AMQPExchangeDeclarationError = "could not declare an exchange"
	AMQPPublishingError          = "could not publish a message"
	AMQPMarshallingError         = "failed to marshall message"
)
