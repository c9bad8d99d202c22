// Package mapping provides the YAML schema, parsing and validation of field
// mapping tables.
//
// A mapping file declares named tables. Each table pairs fields of a primary
// record with fields of another record and names the transformation applied in
// each direction. The mapper package turns a table into a runtime Mapper; the
// modelkit check command validates tables against Go types.
//
// # Schema Overview
//
//	version: "1"
//	tables:
//	  - name: account
//	    primary: accounts.Account        # optional, checked by `modelkit check`
//	    other: accounts.RemoteAccount    # optional
//	    fields:
//	      id: [userId, copy, copy]       # other, set, get
//	      email: mail                    # other only, copy both ways
//	      nickname: [nick, trim]         # other, transform used both ways
//	      status:
//	        other: state
//	        set: parseStatus
//	        get: formatStatus
//	      createdAt:                     # same name on both sides
//	transforms:
//	  - name: parseStatus
//	    description: converts the remote state to a Status
//
// # Defaults
//
//   - version defaults to "1"
//   - a missing other name defaults to the field name
//   - missing set/get transformations default to "copy"
//
// "drop" and "copy" are built in and never need a declaration.
package mapping
