// Package managementv1 is a hand-written rendition of the daemon management
// service: method names, message shapes and a gRPC codec.
//
// Messages travel as JSON under the "json" content subtype, not as protobuf
// binary. The method set matches the daemon's management interface, but a
// production daemon only speaks protobuf, so this package talks to servers
// built with it (such as the in-process fakes in the tests). Speaking to a
// real daemon needs code generated from its .proto files in place of these
// types and the codec.
package managementv1
