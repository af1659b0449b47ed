// Package portal is the HTTP surface of the self-service portal.
//
// Every endpoint lives under /api and speaks JSON, except /api/rut/live which
// answers DataStar requests with signal patches:
//
//	POST /api/identity                       verify RUT, user type and email
//	POST /api/rut/validate                   {valid, formatted, code, message}
//	GET  /api/rut/format?value=              display format
//	GET  /api/rut/live                       live formatting of the rut signal
//	POST /api/wizard/{action}                select, back, jump, home or reset
//	POST /api/requests/{type}                submit a request to the workflow
//	GET  /api/reference/...                  countries, regions, communes, societies, scopes, classes
//
// The wizard state is held by the page: every action posts the current
// state and gets the next one back. /healthz, /readyz and /metrics sit at
// the root.
package portal
