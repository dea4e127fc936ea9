// Package storefront implements the account and order core of an e-commerce
// backend: credential validation and JWT issuance, user registration and
// profile updates, the order lifecycle, and the notifications produced when
// an order changes status.
//
// Token issuance:
//   - TokenService signs HS256 tokens with a fixed, typed claim set
//     (TokenClaims). Issuer, audience, and signing key are validated when the
//     service is constructed; a misconfigured signer never serves requests.
//   - ClaimsDecorator is invoked before tokens are signed. Decorators may
//     enrich extension metadata while protected claims (sub, iss, aud, iat,
//     exp, uid) remain immutable.
//
// Order lifecycle:
//   - OrderService creates orders atomically with their item snapshots and
//     transitions order status. A successful status change writes a
//     best-effort notification to the order owner; notification failures are
//     logged and never surfaced as a status-update failure.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter used by Auther and
//     OrderService for login, registration, and status change events. Sinks
//     run best-effort (errors are logged) so you can forward to a database or
//     queue without blocking the request path.
package storefront
