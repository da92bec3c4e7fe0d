package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/application/auth"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	pkgjwt "github.com/serviagenda/agenda-api/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	c := *u
	f.users[u.ID] = &c
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

var testJWT = auth.JWTConfig{
	Secret:   "test-secret-key-for-unit-tests",
	ExpHours: 168,
	Issuer:   "agenda-api-test",
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "jperez",
		Email:    "jperez@example.com",
		Password: "secreto123",
	}
}

func TestRegister_RolDefaultUser(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// el token lleva las claims del usuario recién creado
	claims, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.ID)
	assert.Equal(t, "jperez", claims.Username)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	in := registerRequest()
	in.Role = "SuperAdmin"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsuarioDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	// mismo username, otro email
	in := registerRequest()
	in.Email = "otro@example.com"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// mismo email, otro username
	in = registerRequest()
	in.Username = "otro"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin_DevuelveElMismoUsuario(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	registered, err := uc.Register(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "jperez", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

// Usuario inexistente y password errado devuelven el mismo error: el login
// no filtra cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "jperez", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	registered, err := uc.Register(registerRequest())
	require.NoError(t, err)

	me, err := uc.Me(registered.User.ID)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, "jperez", me.Username)

	gone, err := uc.Me("no-existe")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
