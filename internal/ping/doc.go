// Package ping extracts packet loss and round-trip statistics from captured
// ping output.
//
// Only the summary block is read. Linux iputils prints it as
//
//	4 packets transmitted, 4 received, 0% packet loss, time 3004ms
//	rtt min/avg/max/mdev = 12.1/13.0/14.2/0.8 ms
//
// A capture with 100% loss has no rtt line, so its sample has no RTTStats.
package ping
