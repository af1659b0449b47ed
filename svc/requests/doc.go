// Package requests defines the request types an author can file through the
// portal and submits them to the corporation's workflow.
//
// Every type has a payload struct mirroring its form. Payloads normalize
// their free text with pkg/sanitizer and validate with pkg/validator, so
// errors carry translation keys the HTTP layer localizes:
//
//	p, err := requests.Decode(requests.TypeBankData, body)
//	if err != nil {
//		return err
//	}
//	sub, err := svc.Submit(ctx, identity, requests.TypeBankData, p)
//
// Service.Submit wraps the payload in an Envelope with the requester's
// identity and the submission date, drops repeats through a Guard and posts
// it with a webhook.Sender.
package requests
