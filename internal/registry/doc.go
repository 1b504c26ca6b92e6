// Package registry holds the process-wide table of capability families.
//
// A capability family is the stable string that multi-registrations are
// grouped under ("Sensor", "DamageReceiver", ...). Families are declared once
// during startup, either by compiled-in modules implementing Module or by the
// scene configuration, and the table is then frozen. Every later use of a
// family name (a re-multiregistration declaration, a multiregister or a
// collect call) is resolved to its canonical spelling through the table, so a
// typo fails loudly instead of silently creating an empty family.
//
// Spellings are matched case-insensitively, and a family may declare extra
// aliases that resolve to the same canonical name.
package registry
