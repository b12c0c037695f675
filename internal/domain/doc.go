// Package domain defines the core business entities of the property portal:
// agencies, agents, properties, buyers, features, inquiries, and offers,
// together with their typed enumerations and validation rules.
package domain
