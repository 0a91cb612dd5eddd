/*
Package rabbitmq is the AMQP transport for the conference consistency layer.
It owns the single broker connection per process with fixed-interval
reconnect, publishes durable domain events to topic exchanges, and consumes
them through exclusive queues with explicit acknowledgment and dead-letter
routing for failed deliveries.
*/
package rabbitmq
