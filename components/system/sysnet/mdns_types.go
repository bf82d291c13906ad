package sysnet

import "strings"

// MdnsServiceType represents known mDNS service types.
//
// References:
//   - See common services: http://www.dns-sd.org/serviceTypes.html
//   - https://datatracker.ietf.org/doc/html/rfc6335
//   - https://www.ietf.org/rfc/rfc6763.txt
type MdnsServiceType int

const (
	// MdnsServiceTypeMqtt is used for a MQTT broker mDNS service type.
	MdnsServiceTypeMqtt MdnsServiceType = iota
)

// String returns string representation of the mDNS service type.
func (s MdnsServiceType) String() string {
	switch s {
	case MdnsServiceTypeMqtt:
		return "_mqtt"
	default:
		return "<none>"
	}
}

// MdnsProto represents known transport protocols.
type MdnsProto int

const (
	// MdnsProtoTCP is used for application protocols that run over TCP.
	MdnsProtoTCP MdnsProto = iota
)

// String returns string representation of the mDNS protocol.
func (p MdnsProto) String() string {
	switch p {
	case MdnsProtoTCP:
		return "_tcp"
	default:
		return "<none>"
	}
}

// MdnsServiceName makes mDNS service name from the provided mDNS service type and protocol.
//
// Examples:
//   - _mqtt._tcp - MQTT broker over TCP protocol.
func MdnsServiceName(serviceType MdnsServiceType, proto MdnsProto) string {
	return strings.Join([]string{serviceType.String(), proto.String()}, ".")
}
