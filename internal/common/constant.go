package common

import pb "github.com/dmitrijs2005/draftkeeper/internal/proto"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// PublicMethods are served without an access token.
var PublicMethods = map[string]bool{
	pb.DraftKeeper_RegisterUser_FullMethodName: true,
	pb.DraftKeeper_GetSalt_FullMethodName:      true,
	pb.DraftKeeper_Login_FullMethodName:        true,
	pb.DraftKeeper_RefreshToken_FullMethodName: true,
}
