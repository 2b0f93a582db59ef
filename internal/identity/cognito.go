package identity

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/labstack/gommon/log"

	"github.com/industrikatalogen/api/internal/service"
)

const roleAttribute = "custom:role"

// CognitoProvider authenticates back-office users against an AWS Cognito
// user pool and extracts the role attribute from the user metadata.
type CognitoProvider struct {
	client      *cognito.Client
	appClientID string
}

// NewCognitoProvider loads the default AWS config for the given region and
// builds a provider bound to one app client.
func NewCognitoProvider(ctx context.Context, region, appClientID string) (*CognitoProvider, error) {
	if region == "" || appClientID == "" {
		return nil, errors.New("cognito region and app client id must be set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &CognitoProvider{
		client:      cognito.NewFromConfig(cfg),
		appClientID: appClientID,
	}, nil
}

// SignIn runs the USER_PASSWORD_AUTH flow and resolves the signed-in user's
// role attribute. The role is mapped to the internal enum by the caller.
func (p *CognitoProvider) SignIn(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
	out, err := p.client.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
		ClientId: aws.String(p.appClientID),
	})
	if err != nil {
		log.Warnf("cognito sign-in failed: %v", err)
		return nil, err
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		return nil, errors.New("cognito returned no authentication result")
	}

	user, err := p.client.GetUser(ctx, &cognito.GetUserInput{
		AccessToken: out.AuthenticationResult.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	identity := &service.ProviderIdentity{Email: email}
	for _, attr := range user.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "email":
			identity.Email = aws.ToString(attr.Value)
		case roleAttribute:
			identity.Role = aws.ToString(attr.Value)
		}
	}
	return identity, nil
}
